package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Default physics constants, in world pixels and seconds.
const (
	Gravity   = 1000.0 // Downward acceleration, px/s²
	JumpForce = -500.0 // Velocity set by a flap, px/s (negative = up)

	maxRotation = 0.5 // Rotation hint at full climb or dive, radians
)

// Body is the bird: a fixed horizontal position with a vertically integrated
// position and velocity. Y is the top of its nominal box and is never clamped;
// leaving the world is detected by the collision checks instead.
type Body struct {
	X  float64 // Left edge, fixed for the whole run
	Y  float64 // Top edge
	VY float64 // Vertical velocity, positive is down

	gravity   float64
	jumpForce float64
	size      config.BodyConfig
}

// NewBody creates a body at rest at (x, y).
func NewBody(x, y float64, physics config.PhysicsConfig, size config.BodyConfig) Body {
	return Body{
		X:         x,
		Y:         y,
		gravity:   physics.Gravity,
		jumpForce: physics.JumpForce,
		size:      size,
	}
}

// Tick integrates one step with explicit Euler: position moves with the
// velocity from before the step, then gravity is applied to the velocity.
func (b *Body) Tick(dt float64) {
	b.Y += b.VY * dt
	b.VY += b.gravity * dt
}

// ApplyImpulse replaces the current velocity with the jump velocity.
func (b *Body) ApplyImpulse() {
	b.VY = b.jumpForce
}

// Center returns the point used for every hit test.
func (b *Body) Center() core.Vec {
	return core.Vec{X: b.X + b.size.CenterOffsetX, Y: b.Y + b.size.CenterOffsetY}
}

// Box returns the nominal bounding box, used only for drawing.
func (b *Body) Box() core.RectF {
	return core.NewRectF(b.X, b.Y, b.size.Width, b.size.Height)
}

// RotationHint maps velocity onto a tilt angle for the presentation layer:
// the jump velocity tilts fully up, its mirror fully down.
func (b *Body) RotationHint() float64 {
	limit := b.jumpForce
	if limit > 0 {
		limit = -limit
	}
	return core.Interpolate(b.VY, limit, -limit, -maxRotation, maxRotation)
}
