package main

import (
	"github.com/charmbracelet/harmonica"
)

// RotationAxis tracks the angle and angular velocity of one axis. A
// harmonica spring eases the velocity back toward its resting speed after
// an impulse.
type RotationAxis struct {
	Position float64
	Velocity float64
	Rest     float64 // velocity the axis settles at

	velSpring harmonica.Spring
	velAccel  float64 // spring velocity of Velocity itself
}

// NewRotationAxis creates an axis at position spinning at rest radians per
// frame.
func NewRotationAxis(fps int, position, rest float64) RotationAxis {
	return RotationAxis{
		Position: position,
		Velocity: rest,
		Rest:     rest,
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position and eases velocity toward Rest.
func (a *RotationAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, a.Rest)
}

// RotationState holds the pitch (angleX) and yaw (angleY) of the mesh.
type RotationState struct {
	Pitch, Yaw RotationAxis

	fps          int
	pitch, speed float64
}

// NewRotationState starts at the given pitch with yaw advancing by speed
// every frame.
func NewRotationState(fps int, pitch, speed float64) *RotationState {
	r := &RotationState{fps: fps, pitch: pitch, speed: speed}
	r.Reset()
	return r
}

// Update advances both axes by one frame.
func (r *RotationState) Update() {
	r.Pitch.Update()
	r.Yaw.Update()
}

// ApplyImpulse adds to the angular velocity of each axis.
func (r *RotationState) ApplyImpulse(pitch, yaw float64) {
	r.Pitch.Velocity += pitch
	r.Yaw.Velocity += yaw
}

// Reset returns to the starting pitch and spin.
func (r *RotationState) Reset() {
	r.Pitch = NewRotationAxis(r.fps, r.pitch, 0)
	r.Yaw = NewRotationAxis(r.fps, 0, r.speed)
}
