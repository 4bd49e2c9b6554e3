// Package flappy implements the flappy simulation: a bird driven by gravity and
// flaps, one recurring pipe pair scrolling right to left, point-in-rectangle
// collisions and a running/paused/game-over state machine.
//
// The package produces numeric state only. Drawing, input devices, persistence
// and audio belong to the caller, which feeds frame deltas and commands in and
// reads Snapshot or Events out.
package flappy

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the game's current mode.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Game is the flappy state machine. It is not safe for concurrent use: the
// caller owns the single simulation timeline and delivers commands between
// frames, as the Bubble Tea loop does.
type Game struct {
	cfg    config.FlappyConfig
	body   Body
	track  *Track
	scorer Scorer
	state  State
	events Events
	ticks  int
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source for gap placement.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.track.rng = r
	}
}

// WithEvents sets the sink for output events.
func WithEvents(e Events) Option {
	return func(g *Game) {
		if e == nil {
			e = NopEvents{}
		}
		g.events = e
	}
}

// New creates a running game from cfg. Without WithRand, gap placement uses a
// time-seeded source.
func New(cfg config.FlappyConfig, opts ...Option) *Game {
	bodyX := cfg.World.Width / 4
	g := &Game{
		cfg:    cfg,
		body:   NewBody(bodyX, cfg.World.Height/3, cfg.Physics, cfg.Body),
		scorer: NewScorer(bodyX),
		events: NopEvents{},
		track: NewTrack(cfg.Track, cfg.World.Width, cfg.World.Height, cfg.Speed,
			rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.scorer.Observe(g.track.X())
	return g
}

// OnFrame advances the simulation by dt seconds. It does nothing unless the
// game is running, and a zero, negative or NaN delta skips the tick.
//
// Within the tick the track scrolls first (feeding the scorer and the gap
// re-roll), then the body integrates, then collisions are tested against the
// post-tick values.
func (g *Game) OnFrame(dt float64) {
	if g.state != StateRunning || !(dt > 0) || math.IsInf(dt, 0) {
		return
	}

	before := g.scorer.Score()
	g.track.Advance(dt, &g.scorer)
	g.body.Tick(dt)
	g.ticks++

	g.events.ObstacleMoved(g.track.X(), g.track.GapOffset())
	g.events.BodyMoved(g.body.Y, g.body.RotationHint())
	if score := g.scorer.Score(); score != before {
		g.events.ScoreChanged(score)
	}

	if g.collided() {
		g.endRun()
	}
}

func (g *Game) collided() bool {
	center := g.body.Center()
	if CheckBounds(center, g.cfg.World.Height, g.cfg.World.GroundMargin) {
		return true
	}
	top, bottom := g.track.Rects()
	return CheckObstacles(center, top, bottom)
}

// endRun enters GameOver. Re-entry is a silent no-op so a second collision
// never produces a second event.
func (g *Game) endRun() {
	if g.state == StateGameOver {
		return
	}
	g.state = StateGameOver
	g.events.GameOver(g.scorer.Score())
}

// OnTap flaps while running and restarts after game over. Taps while paused
// are ignored.
func (g *Game) OnTap() {
	switch g.state {
	case StateRunning:
		g.body.ApplyImpulse()
	case StateGameOver:
		g.restart()
	}
}

// OnPauseRequested pauses a running game. It is ignored in any other state.
func (g *Game) OnPauseRequested() {
	if g.state == StateRunning {
		g.state = StatePaused
	}
}

// OnResumeRequested resumes a paused game from exactly where it stopped.
func (g *Game) OnResumeRequested() {
	if g.state == StatePaused {
		g.state = StateRunning
	}
}

// Restart starts a new run after game over. It is ignored in any other state.
func (g *Game) Restart() {
	if g.state == StateGameOver {
		g.restart()
	}
}

func (g *Game) restart() {
	g.body = NewBody(g.body.X, g.cfg.World.Height/3, g.cfg.Physics, g.cfg.Body)
	g.track.Reset(g.cfg.World.Width)
	g.scorer.Reset()
	g.scorer.Observe(g.track.X())
	g.state = StateRunning
	g.ticks = 0

	g.events.ScoreChanged(0)
	g.events.BodyMoved(g.body.Y, g.body.RotationHint())
	g.events.ObstacleMoved(g.track.X(), g.track.GapOffset())
}

// Step applies the commands collected since the last frame and then advances
// by dt seconds. Commands are applied in a fixed order: restart (or a tap
// after game over), flap, pause, resume.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	var result core.StepResult

	if g.state == StateGameOver && (in.Has(core.ActionRestart) || in.Has(core.ActionTap)) {
		g.restart()
		result.Restarted = true
	} else if in.Has(core.ActionTap) {
		g.OnTap()
	}
	if in.Has(core.ActionPause) {
		g.OnPauseRequested()
	}
	if in.Has(core.ActionResume) {
		g.OnResumeRequested()
	}

	wasOver := g.state == StateGameOver
	g.OnFrame(dt)
	result.Ended = !wasOver && g.state == StateGameOver
	result.State = g.State()
	return result
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scorer.Score(),
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Mode returns the current state machine state.
func (g *Game) Mode() State {
	return g.state
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Snapshot is the post-tick numeric state of the world.
type Snapshot struct {
	State     State
	Score     int
	Ticks     int // Frames simulated in this run
	Cycles    int // Completed scroll cycles in this run
	Body      core.RectF
	Center    core.Vec
	VelocityY float64
	Rotation  float64
	ObstacleX float64
	GapOffset float64
	Top       core.RectF
	Bottom    core.RectF
	GroundY   float64
	WorldW    float64
	WorldH    float64
}

// Snapshot returns a copy of the current world state.
func (g *Game) Snapshot() Snapshot {
	top, bottom := g.track.Rects()
	return Snapshot{
		State:     g.state,
		Score:     g.scorer.Score(),
		Ticks:     g.ticks,
		Cycles:    g.track.Cycles(),
		Body:      g.body.Box(),
		Center:    g.body.Center(),
		VelocityY: g.body.VY,
		Rotation:  g.body.RotationHint(),
		ObstacleX: g.track.X(),
		GapOffset: g.track.GapOffset(),
		Top:       top,
		Bottom:    bottom,
		GroundY:   g.cfg.World.Height - g.cfg.World.GroundMargin,
		WorldW:    g.cfg.World.Width,
		WorldH:    g.cfg.World.Height,
	}
}
