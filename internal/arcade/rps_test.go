package arcade

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habithatch/internal/config"
)

func newTestRPS(seed int64) *RPS {
	return NewRPS(rand.New(rand.NewSource(seed)), config.Default())
}

func TestRPSPayoutForEveryPair(t *testing.T) {
	g := newTestRPS(1)
	cases := []struct {
		player, opponent RPSChoice
		outcome          RPSOutcome
		coins            int
	}{
		{Rock, Rock, RPSTie, 2},
		{Rock, Paper, RPSLoss, 1},
		{Rock, Scissors, RPSWin, 20},
		{Paper, Rock, RPSWin, 20},
		{Paper, Paper, RPSTie, 2},
		{Paper, Scissors, RPSLoss, 1},
		{Scissors, Rock, RPSLoss, 1},
		{Scissors, Paper, RPSWin, 20},
		{Scissors, Scissors, RPSTie, 2},
	}
	for _, tc := range cases {
		res := g.Score(tc.player, tc.opponent)
		assert.Equal(t, tc.outcome, res.Outcome, "%s vs %s", tc.player, tc.opponent)
		assert.Equal(t, tc.coins, res.Coins, "%s vs %s", tc.player, tc.opponent)
		assert.Equal(t, tc.outcome == RPSWin, res.Celebrate)
	}
}

func TestRPSResolveIsDeterministicPerSeed(t *testing.T) {
	a := newTestRPS(42)
	b := newTestRPS(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Resolve(Rock).Opponent, b.Resolve(Rock).Opponent)
	}
}

func TestRPSResolveDrawsAllChoices(t *testing.T) {
	g := newTestRPS(7)
	seen := map[RPSChoice]bool{}
	for i := 0; i < 200; i++ {
		seen[g.Resolve(Rock).Opponent] = true
	}
	assert.Len(t, seen, 3, "opponent draw covers rock, paper and scissors")
}

func TestParseRPSChoice(t *testing.T) {
	c, err := ParseRPSChoice("  ROCK ")
	require.NoError(t, err)
	assert.Equal(t, Rock, c)

	_, err = ParseRPSChoice("lizard")
	assert.Error(t, err)
}
