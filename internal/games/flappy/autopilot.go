package flappy

// DefaultAutopilotMargin keeps the flap pattern inside a standard 160px gap.
const DefaultAutopilotMargin = 55.0

// Autopilot is a simple controller that flaps whenever the bird is falling
// and its center has dropped Margin pixels below the center of the gap.
type Autopilot struct {
	Margin float64
}

// NewAutopilot creates an autopilot with the default margin.
func NewAutopilot() Autopilot {
	return Autopilot{Margin: DefaultAutopilotMargin}
}

// Decide reports whether the bird should flap this frame.
func (a Autopilot) Decide(s Snapshot) bool {
	if s.State != StateRunning {
		return false
	}
	gapCenter := (s.Top.Bottom() + s.Bottom.Y) / 2
	return s.VelocityY > 0 && s.Center.Y > gapCenter+a.Margin
}
