package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(V3(1, 2, 3))
	m2 := Scale(V3(2, 2, 2))

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec3(b *testing.B) {
	m := Scale(V3(2, 2, 2)).Mul(Translate(V3(1, 2, 3)))
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = m.MulVec3(v)
	}
}

func BenchmarkVec3Rotate(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Rotate(0.5, 0.03)
	}
}
