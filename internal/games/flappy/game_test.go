package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// fixedRand returns the same value for every draw.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

// recorder counts every event it receives.
type recorder struct {
	scores    []int
	gameOvers []int
	bodyMoves int
	obsMoves  int
}

func (r *recorder) ScoreChanged(score int)         { r.scores = append(r.scores, score) }
func (r *recorder) GameOver(finalScore int)        { r.gameOvers = append(r.gameOvers, finalScore) }
func (r *recorder) BodyMoved(float64, float64)     { r.bodyMoves++ }
func (r *recorder) ObstacleMoved(float64, float64) { r.obsMoves++ }

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithRand(fixedRand(0.5))}, opts...)
	return New(config.DefaultFlappyConfig(), opts...)
}

func TestGameInitialState(t *testing.T) {
	g := newTestGame(t)
	s := g.Snapshot()

	if s.State != StateRunning {
		t.Errorf("initial state = %v, expected running", s.State)
	}
	if !approx(s.Body.Y, 800.0/3) {
		t.Errorf("initial body y = %f, expected height/3", s.Body.Y)
	}
	if s.VelocityY != 0 {
		t.Errorf("initial velocity = %f, expected 0", s.VelocityY)
	}
	if s.Body.X != 100 {
		t.Errorf("body x = %f, expected width/4", s.Body.X)
	}
	if s.ObstacleX != 350 {
		t.Errorf("initial obstacle x = %f, expected width-50", s.ObstacleX)
	}
	if s.Score != 0 {
		t.Errorf("initial score = %d, expected 0", s.Score)
	}
}

func TestGameImpulseThenTick(t *testing.T) {
	g := newTestGame(t)

	g.OnTap()
	g.OnFrame(0.016)

	if !approx(g.body.VY, -484) {
		t.Errorf("velocity after flap and one tick = %f, expected -484", g.body.VY)
	}
	// Position moved with the pre-tick velocity
	if !approx(g.body.Y, 800.0/3-500*0.016) {
		t.Errorf("position after flap and one tick = %f, expected %f", g.body.Y, 800.0/3-8)
	}
}

func TestGameZeroDeltaIsNoop(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(t, WithEvents(rec))
	before := g.Snapshot()

	g.OnFrame(0)
	g.OnFrame(-0.5)
	g.OnFrame(math.NaN())
	g.OnFrame(math.Inf(1))

	if g.Snapshot() != before {
		t.Error("non-positive or invalid deltas should not change the world")
	}
	if rec.bodyMoves != 0 || rec.obsMoves != 0 {
		t.Errorf("skipped ticks should not emit events, got %d body and %d obstacle", rec.bodyMoves, rec.obsMoves)
	}
}

func TestGamePauseFreezesEverything(t *testing.T) {
	g := newTestGame(t)
	g.OnFrame(0.016)
	g.OnTap()
	g.OnFrame(0.016)

	g.OnPauseRequested()
	frozen := g.Snapshot()
	if frozen.State != StatePaused {
		t.Fatalf("state = %v, expected paused", frozen.State)
	}

	for i := 0; i < 30; i++ {
		g.OnFrame(0.016)
	}
	g.OnTap() // ignored while paused

	after := g.Snapshot()
	if after.Body.Y != frozen.Body.Y || after.VelocityY != frozen.VelocityY || after.ObstacleX != frozen.ObstacleX {
		t.Errorf("paused frames changed the world: before %+v after %+v", frozen, after)
	}

	// Resume continues from the frozen values as if the pause never happened
	reference := newTestGame(t)
	reference.OnFrame(0.016)
	reference.OnTap()
	reference.OnFrame(0.016)

	g.OnResumeRequested()
	g.OnFrame(0.016)
	reference.OnFrame(0.016)

	got, want := g.Snapshot(), reference.Snapshot()
	if got.Body.Y != want.Body.Y || got.VelocityY != want.VelocityY || got.ObstacleX != want.ObstacleX {
		t.Errorf("resume drifted: got y=%f vy=%f x=%f, want y=%f vy=%f x=%f",
			got.Body.Y, got.VelocityY, got.ObstacleX, want.Body.Y, want.VelocityY, want.ObstacleX)
	}
}

func TestGamePauseResumeGating(t *testing.T) {
	g := newTestGame(t)

	g.OnResumeRequested()
	if g.Mode() != StateRunning {
		t.Errorf("resume while running should be ignored, state = %v", g.Mode())
	}

	g.endRun()
	g.OnPauseRequested()
	if g.Mode() != StateGameOver {
		t.Errorf("pause after game over should be ignored, state = %v", g.Mode())
	}
	g.OnResumeRequested()
	if g.Mode() != StateGameOver {
		t.Errorf("resume after game over should be ignored, state = %v", g.Mode())
	}
}

func TestGameOverIsIdempotent(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(t, WithEvents(rec))

	g.endRun()
	g.endRun()
	g.OnFrame(0.016)

	if g.Mode() != StateGameOver {
		t.Fatalf("state = %v, expected game over", g.Mode())
	}
	if len(rec.gameOvers) != 1 {
		t.Errorf("GameOver emitted %d times, expected 1", len(rec.gameOvers))
	}
}

func TestGameGroundCollision(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(t, WithEvents(rec))

	// Center y = 676 + 24 = 700 is exactly on the ground line: still alive
	g.body.Y = 676
	g.body.VY = 0
	g.OnFrame(1e-12)
	if g.Mode() != StateRunning {
		t.Fatalf("center on the ground line should not collide, state = %v", g.Mode())
	}

	g.body.VY = 600
	g.OnFrame(0.016)
	if g.Mode() != StateGameOver {
		t.Fatalf("falling through the ground should end the run, state = %v", g.Mode())
	}
	if len(rec.gameOvers) != 1 {
		t.Errorf("GameOver emitted %d times, expected 1", len(rec.gameOvers))
	}

	frozenX := g.track.X()
	g.OnFrame(0.5)
	if g.track.X() != frozenX {
		t.Errorf("track should stay frozen after game over, moved from %f to %f", frozenX, g.track.X())
	}
}

func TestGameCeilingCollision(t *testing.T) {
	g := newTestGame(t)
	// Center y = -40 - 1.6 + 24 ends above the top edge
	g.body.Y = -40
	g.body.VY = -100
	g.OnFrame(0.016)

	if g.Mode() != StateGameOver {
		t.Errorf("center above the ceiling should end the run, state = %v", g.Mode())
	}
}

func TestGamePipeCollision(t *testing.T) {
	g := newTestGame(t)

	// Move the pipe onto the bird: center x = 132
	g.track.Reset(100)
	// Gap offset 0 puts the top pipe over y in [-320, 320]
	g.body.Y = 100
	g.body.VY = 0
	g.OnFrame(0.001)

	if g.Mode() != StateGameOver {
		t.Errorf("center inside the top pipe should end the run, state = %v", g.Mode())
	}
}

func TestGamePassesThroughGap(t *testing.T) {
	g := newTestGame(t)

	g.track.Reset(100)
	// Gap offset 0: gap spans y in (320, 480), center at 400
	g.body.Y = 400 - 24
	g.body.VY = 0
	g.OnFrame(0.001)

	if g.Mode() != StateRunning {
		t.Errorf("center inside the gap should not collide, state = %v", g.Mode())
	}
}

func TestGameScoresOncePerCycle(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(t, WithEvents(rec))
	pilot := NewAutopilot()

	// Three full cycles at speed 1, flying through the gaps
	for i := 0; i < 60*9; i++ {
		if pilot.Decide(g.Snapshot()) {
			g.OnTap()
		}
		g.OnFrame(1.0 / 60)
		if g.Mode() != StateRunning {
			t.Fatalf("autopilot crashed at frame %d: %+v", i, g.Snapshot())
		}
	}

	// Crossings at 1.5s, 4.64s and 7.64s
	if g.scorer.Score() != 3 {
		t.Errorf("score after 9s = %d, expected 3", g.scorer.Score())
	}
	for i, s := range rec.scores {
		if s != i+1 {
			t.Errorf("ScoreChanged events = %v, expected 1, 2, 3", rec.scores)
			break
		}
	}
}

func TestGameRestart(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(t, WithEvents(rec))
	g.scorer.score = 7
	g.body.VY = 321
	g.endRun()

	g.OnTap()

	s := g.Snapshot()
	if s.State != StateRunning {
		t.Fatalf("tap after game over should restart, state = %v", s.State)
	}
	if s.Score != 0 {
		t.Errorf("restart should reset score, got %d", s.Score)
	}
	if s.VelocityY != 0 || !approx(s.Body.Y, 800.0/3) {
		t.Errorf("restart should reset the body, got y=%f vy=%f", s.Body.Y, s.VelocityY)
	}
	if s.ObstacleX != 400 {
		t.Errorf("restart should move the obstacle to the right edge, got %f", s.ObstacleX)
	}
	if len(rec.scores) == 0 || rec.scores[len(rec.scores)-1] != 0 {
		t.Errorf("restart should emit a zero score, got %v", rec.scores)
	}

	// The fresh cycle runs the full width over the full duration
	g.OnFrame(0.75)
	if !approx(g.track.X(), 400+(-150-400)*0.25) {
		t.Errorf("obstacle x a quarter through the fresh cycle = %f, expected %f", g.track.X(), 262.5)
	}

	// Restart is ignored while running
	g.Restart()
	if g.Snapshot().Ticks != 1 {
		t.Error("Restart while running should be ignored")
	}
}

func TestGameStepCommands(t *testing.T) {
	g := newTestGame(t)

	tap := core.NewInputFrame()
	tap.Set(core.ActionTap)
	result := g.Step(tap, 0.016)
	if !approx(g.body.VY, -484) {
		t.Errorf("tap applied at the tick boundary should give -484, got %f", g.body.VY)
	}
	if result.State.GameOver || result.Ended || result.Restarted {
		t.Errorf("unexpected step result %+v", result)
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	result = g.Step(pause, 0.016)
	if !result.State.Paused {
		t.Error("pause command should pause before the frame")
	}
	if !approx(g.body.VY, -484) {
		t.Errorf("paused frame should not integrate, vy = %f", g.body.VY)
	}

	resume := core.NewInputFrame()
	resume.Set(core.ActionResume)
	result = g.Step(resume, 0.016)
	if result.State.Paused || !approx(g.body.VY, -468) {
		t.Errorf("resume should integrate the same frame, paused=%v vy=%f", result.State.Paused, g.body.VY)
	}

	g.body.Y = 2000
	result = g.Step(core.NewInputFrame(), 0.016)
	if !result.Ended || !result.State.GameOver {
		t.Errorf("leaving the world should end the run in this step, got %+v", result)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	result = g.Step(restart, 0.016)
	if !result.Restarted || result.State.GameOver {
		t.Errorf("restart command should start a new run, got %+v", result)
	}
	if !approx(g.body.VY, 16) {
		t.Errorf("restart should not flap, vy = %f", g.body.VY)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(config.DefaultFlappyConfig(), WithRand(rand.New(rand.NewSource(12345))))
		pilot := NewAutopilot()
		for i := 0; i < 60*20; i++ {
			if pilot.Decide(g.Snapshot()) {
				g.OnTap()
			}
			g.OnFrame(1.0 / 60)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("same seed and inputs should give identical snapshots:\n%+v\n%+v", a, b)
	}
}

func TestAutopilotSurvives(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		g := New(config.DefaultFlappyConfig(), WithRand(rand.New(rand.NewSource(seed))))
		pilot := NewAutopilot()
		for i := 0; i < 60*40; i++ {
			if pilot.Decide(g.Snapshot()) {
				g.OnTap()
			}
			g.OnFrame(1.0 / 60)
		}
		if g.Mode() != StateRunning {
			t.Errorf("seed %d: autopilot crashed with score %d", seed, g.scorer.Score())
			continue
		}
		if g.scorer.Score() < 10 {
			t.Errorf("seed %d: score after 40s = %d, expected at least 10", seed, g.scorer.Score())
		}
	}
}

func TestStateString(t *testing.T) {
	if StateRunning.String() != "running" || StatePaused.String() != "paused" || StateGameOver.String() != "game over" {
		t.Error("unexpected state names")
	}
	if State(99).String() != "unknown" {
		t.Error("out of range state should be unknown")
	}
}
