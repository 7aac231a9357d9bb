package arcade

import (
	"math/rand"

	"habithatch/internal/config"
)

var memorySymbols = []string{"🍎", "🍌", "🍇", "🍊"}

// MemoryCard is one face of the 4x2 deck.
type MemoryCard struct {
	Symbol  string
	Matched bool
}

type FlipOutcome int

const (
	// FlipRejected: the index was invalid, already face-up/matched, or two
	// unmatched cards are still pending resolution.
	FlipRejected FlipOutcome = iota
	// FlipFaceUp: first card of a turn turned over, waiting for the second.
	FlipFaceUp
	// FlipMatched: the pair matched and locked.
	FlipMatched
	// FlipMismatch: the pair differs; both stay up until ResolveMismatch.
	FlipMismatch
)

type FlipResult struct {
	Outcome FlipOutcome
	// Won is true exactly once per session, on the flip that matches the
	// final pair. Coins carries the flat reward on that flip only.
	Won       bool
	Coins     int
	Celebrate bool
}

// MemorySession is one memory-match board: four distinct symbols duplicated
// into eight cards, shuffled uniformly.
type MemorySession struct {
	cards   []MemoryCard
	faceUp  []int
	matched int
	won     bool
	balance config.Balance
}

func NewMemorySession(rng *rand.Rand, balance config.Balance) *MemorySession {
	cards := make([]MemoryCard, 0, len(memorySymbols)*2)
	for _, s := range memorySymbols {
		cards = append(cards, MemoryCard{Symbol: s}, MemoryCard{Symbol: s})
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &MemorySession{cards: cards, balance: balance}
}

func (s *MemorySession) Cards() []MemoryCard {
	out := make([]MemoryCard, len(s.cards))
	copy(out, s.cards)
	return out
}

// FaceUp reports whether card i is currently revealed (pending or matched).
func (s *MemorySession) FaceUp(i int) bool {
	if i < 0 || i >= len(s.cards) {
		return false
	}
	if s.cards[i].Matched {
		return true
	}
	for _, idx := range s.faceUp {
		if idx == i {
			return true
		}
	}
	return false
}

// PendingMismatch reports whether two unequal cards are waiting to be
// flipped back. While true, further flips are rejected.
func (s *MemorySession) PendingMismatch() bool {
	return len(s.faceUp) == 2
}

func (s *MemorySession) Won() bool { return s.won }

// Flip turns over card i. At most two unmatched cards may be face-up at
// once; a third attempt is rejected, not an error.
func (s *MemorySession) Flip(i int) FlipResult {
	if s.won || s.PendingMismatch() || i < 0 || i >= len(s.cards) {
		return FlipResult{Outcome: FlipRejected}
	}
	if s.cards[i].Matched || s.FaceUp(i) {
		return FlipResult{Outcome: FlipRejected}
	}

	s.faceUp = append(s.faceUp, i)
	if len(s.faceUp) < 2 {
		return FlipResult{Outcome: FlipFaceUp}
	}

	first, second := s.faceUp[0], s.faceUp[1]
	if s.cards[first].Symbol != s.cards[second].Symbol {
		return FlipResult{Outcome: FlipMismatch}
	}

	s.cards[first].Matched = true
	s.cards[second].Matched = true
	s.faceUp = s.faceUp[:0]
	s.matched += 2

	res := FlipResult{Outcome: FlipMatched}
	if s.matched == len(s.cards) {
		s.won = true
		res.Won = true
		res.Coins = s.balance.MemoryWinCoins
		res.Celebrate = true
	}
	return res
}

// ResolveMismatch flips a pending non-matching pair back down. The UI calls
// this after its reveal delay.
func (s *MemorySession) ResolveMismatch() {
	if s.PendingMismatch() {
		s.faceUp = s.faceUp[:0]
	}
}
