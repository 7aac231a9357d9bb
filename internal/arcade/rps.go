// Package arcade holds the three mini-game reward generators. Sessions are
// plain state machines with an injected random source; delays and rendering
// belong to the TUI layer, so every reward here is a deterministic function
// of the session's inputs.
package arcade

import (
	"fmt"
	"math/rand"
	"strings"

	"habithatch/internal/config"
)

type RPSChoice string

const (
	Rock     RPSChoice = "rock"
	Paper    RPSChoice = "paper"
	Scissors RPSChoice = "scissors"
)

var rpsChoices = []RPSChoice{Rock, Paper, Scissors}

func ParseRPSChoice(input string) (RPSChoice, error) {
	c := RPSChoice(strings.TrimSpace(strings.ToLower(input)))
	switch c {
	case Rock, Paper, Scissors:
		return c, nil
	default:
		return "", fmt.Errorf("invalid choice %q (rock|paper|scissors)", input)
	}
}

// Beats reports the standard relation: rock beats scissors, scissors beats
// paper, paper beats rock.
func (c RPSChoice) Beats(other RPSChoice) bool {
	switch c {
	case Rock:
		return other == Scissors
	case Scissors:
		return other == Paper
	case Paper:
		return other == Rock
	default:
		return false
	}
}

func (c RPSChoice) Emoji() string {
	switch c {
	case Rock:
		return "🪨"
	case Paper:
		return "📄"
	case Scissors:
		return "✂️"
	default:
		return "?"
	}
}

type RPSOutcome int

const (
	RPSTie RPSOutcome = iota
	RPSWin
	RPSLoss
)

type RPSResult struct {
	Player    RPSChoice
	Opponent  RPSChoice
	Outcome   RPSOutcome
	Coins     int
	Celebrate bool
}

func (r RPSResult) String() string {
	switch r.Outcome {
	case RPSWin:
		return fmt.Sprintf("Win! %s beats %s.", r.Player, r.Opponent)
	case RPSLoss:
		return fmt.Sprintf("Lost! %s beats %s.", r.Opponent, r.Player)
	default:
		return fmt.Sprintf("Draw! Both picked %s.", r.Player)
	}
}

// RPS resolves rock-paper-scissors rounds. The opponent pick is drawn at
// resolve time, uniformly from the three options; the reveal delay the UI
// adds cannot influence it.
type RPS struct {
	rng     *rand.Rand
	balance config.Balance
}

func NewRPS(rng *rand.Rand, balance config.Balance) *RPS {
	return &RPS{rng: rng, balance: balance}
}

// Resolve draws the opponent and scores the round.
func (g *RPS) Resolve(player RPSChoice) RPSResult {
	opponent := rpsChoices[g.rng.Intn(len(rpsChoices))]
	return g.Score(player, opponent)
}

// Score is the pure payout rule for a (player, opponent) pair.
func (g *RPS) Score(player, opponent RPSChoice) RPSResult {
	res := RPSResult{Player: player, Opponent: opponent}
	switch {
	case player == opponent:
		res.Outcome = RPSTie
		res.Coins = g.balance.RPSTieCoins
	case player.Beats(opponent):
		res.Outcome = RPSWin
		res.Coins = g.balance.RPSWinCoins
		res.Celebrate = true
	default:
		res.Outcome = RPSLoss
		res.Coins = g.balance.RPSLossCoins
	}
	return res
}
