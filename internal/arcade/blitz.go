package arcade

import "habithatch/internal/config"

type BlitzState int

const (
	BlitzIdle BlitzState = iota
	BlitzRunning
	BlitzFinished
)

// BlitzSession is the tap-blitz countdown. It has no timer of its own: the
// UI drives it with one Tick per elapsed time unit, which keeps the reward
// a pure function of the tap count.
type BlitzSession struct {
	state    BlitzState
	timeLeft int
	score    int
	balance  config.Balance
}

func NewBlitzSession(balance config.Balance) *BlitzSession {
	return &BlitzSession{
		timeLeft: balance.BlitzSeconds,
		balance:  balance,
	}
}

func (s *BlitzSession) State() BlitzState { return s.state }
func (s *BlitzSession) TimeLeft() int     { return s.timeLeft }
func (s *BlitzSession) Score() int        { return s.score }

// Tap starts the countdown on the first press and counts every press while
// it runs. Taps after the timer expires do nothing.
func (s *BlitzSession) Tap() {
	switch s.state {
	case BlitzIdle:
		s.state = BlitzRunning
	case BlitzRunning:
		s.score++
	}
}

// Tick advances the countdown by one time unit and reports whether this
// tick finished the session.
func (s *BlitzSession) Tick() (finished bool) {
	if s.state != BlitzRunning {
		return false
	}
	s.timeLeft--
	if s.timeLeft > 0 {
		return false
	}
	s.timeLeft = 0
	s.state = BlitzFinished
	return true
}

// Reward is floor(score / divisor).
func (s *BlitzSession) Reward() int {
	div := s.balance.BlitzScoreDivisor
	if div <= 0 {
		div = 2
	}
	return s.score / div
}

func (s *BlitzSession) Celebrate() bool {
	return s.score > s.balance.BlitzCelebrationScore
}

// Reset returns the session to idle for a replay, clearing score and timer.
func (s *BlitzSession) Reset() {
	s.state = BlitzIdle
	s.timeLeft = s.balance.BlitzSeconds
	s.score = 0
}
