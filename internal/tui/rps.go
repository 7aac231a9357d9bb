package tui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"habithatch/internal/arcade"
	"habithatch/internal/config"
	"habithatch/internal/game"
	"habithatch/internal/ui"
)

type rpsRevealMsg struct{}

type rpsModel struct {
	ctx context.Context
	svc *game.Service
	rps *arcade.RPS

	pending *arcade.RPSChoice
	result  *arcade.RPSResult
	total   int
}

func newRPSModel(ctx context.Context, svc *game.Service, balance config.Balance, rng *rand.Rand) rpsModel {
	return rpsModel{
		ctx: ctx,
		svc: svc,
		rps: arcade.NewRPS(rng, balance),
	}
}

func (m rpsModel) Init() tea.Cmd { return nil }

func (m rpsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.pending != nil {
			return m, nil // suspense in progress
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m.play(arcade.Rock)
		case "p":
			return m.play(arcade.Paper)
		case "s":
			return m.play(arcade.Scissors)
		}
	case rpsRevealMsg:
		if m.pending == nil {
			return m, nil
		}
		res := m.rps.Resolve(*m.pending)
		m.pending = nil
		m.result = &res
		m.total += res.Coins
		m.svc.CreditArcade(m.ctx, res.Coins)
		return m, nil
	}
	return m, nil
}

func (m rpsModel) play(choice arcade.RPSChoice) (tea.Model, tea.Cmd) {
	m.pending = &choice
	m.result = nil
	return m, tea.Tick(suspenseDelay, func(time.Time) tea.Msg { return rpsRevealMsg{} })
}

func (m rpsModel) View() string {
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconGame, "Rock Paper Scissors") + "\n\n")

	switch {
	case m.pending != nil:
		b.WriteString(ui.Muted.Render("Thinking...") + "\n")
	case m.result != nil:
		line := m.result.String()
		switch m.result.Outcome {
		case arcade.RPSWin:
			b.WriteString(ui.Good.Render(line) + "\n")
		case arcade.RPSLoss:
			b.WriteString(ui.Bad.Render(line) + "\n")
		default:
			b.WriteString(ui.Warn.Render(line) + "\n")
		}
		b.WriteString(fmt.Sprintf("%s +%d\n", ui.IconCoin, m.result.Coins))
		if m.result.Celebrate {
			b.WriteString(ui.Celebration("You won!") + "\n")
		}
	default:
		b.WriteString("Choose your weapon!\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s\n",
		ui.Key.Render("[r]"), arcade.Rock.Emoji(),
		ui.Key.Render("[p]"), arcade.Paper.Emoji(),
		ui.Key.Render("[s]"), arcade.Scissors.Emoji()))
	b.WriteString(ui.Muted.Render(fmt.Sprintf("earned this visit: %d  •  q to leave", m.total)) + "\n")
	return ui.Panel.Render(b.String())
}
