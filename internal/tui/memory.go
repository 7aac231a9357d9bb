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

type memoryResolveMsg struct{}

const memoryCols = 4

type memoryModel struct {
	ctx     context.Context
	svc     *game.Service
	balance config.Balance
	rng     *rand.Rand

	session *arcade.MemorySession
	cursor  int
	won     bool
	lastLog string
}

func newMemoryModel(ctx context.Context, svc *game.Service, balance config.Balance, rng *rand.Rand) memoryModel {
	return memoryModel{
		ctx:     ctx,
		svc:     svc,
		balance: balance,
		rng:     rng,
		session: arcade.NewMemorySession(rng, balance),
		lastLog: "Find the pairs!",
	}
}

func (m memoryModel) Init() tea.Cmd { return nil }

func (m memoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "n":
			if m.won {
				m.session = arcade.NewMemorySession(m.rng, m.balance)
				m.won = false
				m.cursor = 0
				m.lastLog = "Find the pairs!"
			}
			return m, nil
		case "left", "h":
			if m.cursor%memoryCols > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor%memoryCols < memoryCols-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor >= memoryCols {
				m.cursor -= memoryCols
			}
		case "down", "j":
			if m.cursor+memoryCols < len(m.session.Cards()) {
				m.cursor += memoryCols
			}
		case "enter", " ":
			return m.flip()
		}
	case memoryResolveMsg:
		m.session.ResolveMismatch()
		return m, nil
	}
	return m, nil
}

func (m memoryModel) flip() (tea.Model, tea.Cmd) {
	res := m.session.Flip(m.cursor)
	switch res.Outcome {
	case arcade.FlipRejected:
		return m, nil
	case arcade.FlipMismatch:
		m.lastLog = "No match..."
		return m, tea.Tick(mismatchDelay, func(time.Time) tea.Msg { return memoryResolveMsg{} })
	case arcade.FlipMatched:
		m.lastLog = "A pair!"
		if res.Won {
			m.won = true
			m.svc.CreditArcade(m.ctx, res.Coins)
			m.lastLog = fmt.Sprintf("You won! +%d %s", res.Coins, ui.IconCoin)
		}
	}
	return m, nil
}

func (m memoryModel) View() string {
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconGame, "Memory Match") + "\n\n")

	cards := m.session.Cards()
	for i, card := range cards {
		face := "?"
		if m.session.FaceUp(i) {
			face = card.Symbol
		}
		cell := ui.CardDown.Render(face)
		if m.session.FaceUp(i) {
			cell = ui.CardUp.Render(face)
		}
		if i == m.cursor && !m.won {
			cell = ui.Gold.Render(">") + cell
		} else {
			cell = " " + cell
		}
		b.WriteString(cell)
		if (i+1)%memoryCols == 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.won {
		b.WriteString(ui.Celebration(m.lastLog) + "\n")
		b.WriteString(ui.Muted.Render("n for a new board  •  q to leave") + "\n")
	} else {
		b.WriteString(m.lastLog + "\n")
		b.WriteString(ui.Muted.Render("arrows to move, enter to flip, q to leave") + "\n")
	}
	return ui.Panel.Render(b.String())
}
