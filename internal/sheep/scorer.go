package sheep

import "time"

// Scorer tracks the event and survival components of the score.
type Scorer struct {
	milestoneEvery int
	eventScore     int
	timeScore      int
	elapsed        time.Duration
	total          int
}

// Credit describes the outcome of a credit call.
type Credit struct {
	Old, New  int
	Milestone bool // A multiple of the milestone step was crossed
}

// NewScorer creates a scorer reporting milestones every step points.
func NewScorer(step int) *Scorer {
	if step <= 0 {
		step = 100
	}
	return &Scorer{milestoneEvery: step}
}

// CreditJump adds points for a successful jump.
func (s *Scorer) CreditJump(points int) Credit {
	return s.credit(points)
}

// CreditAvoid adds points for an entity that left the field.
func (s *Scorer) CreditAvoid(points int) Credit {
	return s.credit(points)
}

func (s *Scorer) credit(points int) Credit {
	old := s.total
	if points > 0 {
		s.eventScore += points
	}
	s.recompute()
	return Credit{
		Old:       old,
		New:       s.total,
		Milestone: old/s.milestoneEvery != s.total/s.milestoneEvery,
	}
}

// Tick accumulates playing time. The time component is whole seconds.
func (s *Scorer) Tick(dt time.Duration) {
	if dt > 0 {
		s.elapsed += dt
	}
	s.timeScore = int(s.elapsed / time.Second)
	s.recompute()
}

// Reset zeroes every component.
func (s *Scorer) Reset() {
	s.eventScore = 0
	s.timeScore = 0
	s.elapsed = 0
	s.total = 0
}

func (s *Scorer) recompute() {
	s.total = s.eventScore + s.timeScore
}

// Total returns the current score.
func (s *Scorer) Total() int { return s.total }

// EventScore returns points earned from jumps and avoidance.
func (s *Scorer) EventScore() int { return s.eventScore }

// TimeScore returns points earned from survival time.
func (s *Scorer) TimeScore() int { return s.timeScore }

// Elapsed returns the accumulated playing time.
func (s *Scorer) Elapsed() time.Duration { return s.elapsed }
