package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Rand is the random source used for gap placement.
// *math/rand.Rand satisfies it; tests inject fixed values.
type Rand interface {
	Float64() float64
}

// Observer receives every horizontal position the track passes through,
// including the end of a cycle and the snap back to the spawn position.
type Observer interface {
	Observe(x float64)
}

// Track owns the single recurring obstacle pair.
//
// Its position is a piecewise-linear function of scroll time: each cycle moves
// from a start position to cfg.ExitX over one cycle duration, then snaps to the
// world's right edge and starts again. Time only accumulates through Advance,
// so a caller that stops calling Advance freezes the track exactly.
type Track struct {
	cfg    config.TrackConfig
	worldW float64
	worldH float64
	speed  int
	rng    Rand

	x       float64 // Current left edge of both pipes
	gap     float64 // Vertical offset shared by both pipes
	from    float64 // Position at the start of the current cycle
	elapsed float64 // Seconds into the current cycle
	cycles  int     // Completed cycles since the last reset
}

// NewTrack creates a track whose first cycle starts just inside the right edge.
func NewTrack(cfg config.TrackConfig, worldW, worldH float64, speed int, rng Rand) *Track {
	t := &Track{
		cfg:    cfg,
		worldW: worldW,
		worldH: worldH,
		speed:  speed,
		rng:    rng,
	}
	t.Reset(worldW - cfg.StartInset)
	return t
}

// Reset starts a fresh cycle at x. The gap offset is kept until the next respawn.
func (t *Track) Reset(x float64) {
	t.x = x
	t.from = x
	t.elapsed = 0
	t.cycles = 0
}

// Duration returns the length of one cycle in seconds.
// A non-positive speed multiplier is treated as 1.
func (t *Track) Duration() float64 {
	speed := t.speed
	if speed <= 0 {
		speed = 1
	}
	return t.cfg.CycleMS / 1000 / float64(speed)
}

// Advance moves the track forward by dt seconds of scroll time, reporting each
// sample to obs. A step that crosses the end of a cycle reports the exit
// position and the snap before continuing into the next cycle, so edge
// observers never miss a crossing on a long frame.
//
// A step spanning more than two cycles skips the whole cycles in between
// without sampling them: they are counted in Cycles but produce no
// observations, so a scorer only sees the last exit and snap.
func (t *Track) Advance(dt float64, obs Observer) {
	duration := t.Duration()
	if duration <= 0 {
		return
	}
	remaining := dt
	for remaining > 0 {
		left := duration - t.elapsed
		if remaining < left {
			t.elapsed += remaining
			t.moveTo(core.Lerp(t.from, t.cfg.ExitX, t.elapsed/duration), obs)
			return
		}
		remaining -= left
		t.moveTo(t.cfg.ExitX, obs)

		t.cycles++
		t.from = t.worldW
		t.elapsed = 0
		t.moveTo(t.worldW, obs)

		if skip := math.Floor(remaining/duration) - 1; skip > 0 {
			skip = min(skip, math.MaxInt32)
			t.cycles += int(skip)
			remaining -= skip * duration
		}
	}
}

// moveTo sets the position and re-rolls the gap when x passes RespawnX going
// left. The previous sample may sit exactly on RespawnX (>=), so a frame that
// lands on the threshold still re-rolls on the next step instead of skipping
// that cycle's re-roll.
func (t *Track) moveTo(x float64, obs Observer) {
	prev := t.x
	t.x = x
	if prev >= t.cfg.RespawnX && x < t.cfg.RespawnX {
		t.gap = t.rng.Float64()*t.cfg.GapRange - t.cfg.GapRange/2
	}
	if obs != nil {
		obs.Observe(x)
	}
}

// X returns the current left edge of the obstacle pair.
func (t *Track) X() float64 {
	return t.x
}

// GapOffset returns the current vertical offset of the gap.
func (t *Track) GapOffset() float64 {
	return t.gap
}

// Cycles returns the number of completed cycles since the last reset.
func (t *Track) Cycles() int {
	return t.cycles
}

// Rects returns the top and bottom obstacle rectangles.
func (t *Track) Rects() (top, bottom core.RectF) {
	half := t.cfg.PipeHeight / 2
	top = core.NewRectF(t.x, t.gap-half, t.cfg.PipeWidth, t.cfg.PipeHeight)
	bottom = core.NewRectF(t.x, t.worldH-half+t.gap, t.cfg.PipeWidth, t.cfg.PipeHeight)
	return top, bottom
}
