package main

import (
	"math"
	"testing"
)

func TestRotationSteadySpin(t *testing.T) {
	r := NewRotationState(33, 0.5, 0.03)

	for range 100 {
		r.Update()
	}

	if r.Pitch.Position != 0.5 {
		t.Errorf("pitch drifted to %v", r.Pitch.Position)
	}
	if math.Abs(r.Yaw.Position-3.0) > 1e-9 {
		t.Errorf("yaw = %v after 100 frames, want 3.0", r.Yaw.Position)
	}
	if r.Yaw.Velocity != 0.03 {
		t.Errorf("yaw velocity = %v, want 0.03", r.Yaw.Velocity)
	}
}

func TestRotationImpulseSettles(t *testing.T) {
	r := NewRotationState(33, 0.5, 0.03)
	r.ApplyImpulse(0.2, -0.4)

	if r.Pitch.Velocity != 0.2 || r.Yaw.Velocity != 0.03-0.4 {
		t.Fatalf("impulse not applied: pitch %v, yaw %v", r.Pitch.Velocity, r.Yaw.Velocity)
	}

	for range 330 {
		r.Update()
	}

	if math.Abs(r.Pitch.Velocity) > 1e-6 {
		t.Errorf("pitch velocity = %v, want ~0", r.Pitch.Velocity)
	}
	if math.Abs(r.Yaw.Velocity-0.03) > 1e-6 {
		t.Errorf("yaw velocity = %v, want ~0.03", r.Yaw.Velocity)
	}
	if r.Pitch.Position == 0.5 {
		t.Error("impulse should have moved the pitch")
	}
}

func TestRotationReset(t *testing.T) {
	r := NewRotationState(60, 0.25, 0.05)
	r.ApplyImpulse(1, 1)
	for range 10 {
		r.Update()
	}

	r.Reset()

	if r.Pitch.Position != 0.25 || r.Pitch.Velocity != 0 {
		t.Errorf("pitch after reset = %+v", r.Pitch)
	}
	if r.Yaw.Position != 0 || r.Yaw.Velocity != 0.05 {
		t.Errorf("yaw after reset = %+v", r.Yaw)
	}
}
