package flappy

// Events receives the simulation's outputs after each tick boundary.
// Values passed are always post-tick.
type Events interface {
	ScoreChanged(score int)
	GameOver(finalScore int)
	BodyMoved(y, rotation float64)
	ObstacleMoved(x, gapOffset float64)
}

// NopEvents discards every event.
type NopEvents struct{}

func (NopEvents) ScoreChanged(int)               {}
func (NopEvents) GameOver(int)                   {}
func (NopEvents) BodyMoved(float64, float64)     {}
func (NopEvents) ObstacleMoved(float64, float64) {}

// EventFuncs adapts optional callbacks to Events. Nil fields are skipped.
type EventFuncs struct {
	OnScoreChanged  func(score int)
	OnGameOver      func(finalScore int)
	OnBodyMoved     func(y, rotation float64)
	OnObstacleMoved func(x, gapOffset float64)
}

func (f EventFuncs) ScoreChanged(score int) {
	if f.OnScoreChanged != nil {
		f.OnScoreChanged(score)
	}
}

func (f EventFuncs) GameOver(finalScore int) {
	if f.OnGameOver != nil {
		f.OnGameOver(finalScore)
	}
}

func (f EventFuncs) BodyMoved(y, rotation float64) {
	if f.OnBodyMoved != nil {
		f.OnBodyMoved(y, rotation)
	}
}

func (f EventFuncs) ObstacleMoved(x, gapOffset float64) {
	if f.OnObstacleMoved != nil {
		f.OnObstacleMoved(x, gapOffset)
	}
}
