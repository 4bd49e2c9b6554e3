package flappy

// Scorer counts obstacle passes: one point each time the obstacle's left edge
// moves from right of the body's x to at or left of it.
type Scorer struct {
	bodyX   float64
	prev    float64
	hasPrev bool
	score   int
}

// NewScorer creates a scorer for a body fixed at bodyX.
func NewScorer(bodyX float64) Scorer {
	return Scorer{bodyX: bodyX}
}

// Observe records a new obstacle position. The first sample after a reset
// only sets the baseline, and repeated identical samples never score.
func (s *Scorer) Observe(x float64) {
	if s.hasPrev && x != s.prev && s.prev > s.bodyX && x <= s.bodyX {
		s.score++
	}
	s.prev = x
	s.hasPrev = true
}

// Score returns the current score.
func (s *Scorer) Score() int {
	return s.score
}

// Reset zeroes the score and forgets the baseline.
func (s *Scorer) Reset() {
	s.score = 0
	s.hasPrev = false
}
