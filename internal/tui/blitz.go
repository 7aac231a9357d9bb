package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"habithatch/internal/arcade"
	"habithatch/internal/config"
	"habithatch/internal/game"
	"habithatch/internal/ui"
)

type blitzTickMsg struct{}

type blitzModel struct {
	ctx context.Context
	svc *game.Service

	session *arcade.BlitzSession
	reward  int
}

func newBlitzModel(ctx context.Context, svc *game.Service, balance config.Balance) blitzModel {
	return blitzModel{
		ctx:     ctx,
		svc:     svc,
		session: arcade.NewBlitzSession(balance),
	}
}

func (m blitzModel) Init() tea.Cmd { return nil }

func blitzTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return blitzTickMsg{} })
}

func (m blitzModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			if m.session.State() == arcade.BlitzFinished {
				m.session.Reset()
				m.reward = 0
			}
			return m, nil
		case " ", "enter":
			wasIdle := m.session.State() == arcade.BlitzIdle
			m.session.Tap()
			if wasIdle && m.session.State() == arcade.BlitzRunning {
				return m, blitzTick()
			}
			return m, nil
		}
	case blitzTickMsg:
		if m.session.Tick() {
			m.reward = m.session.Reward()
			m.svc.CreditArcade(m.ctx, m.reward)
			return m, nil
		}
		if m.session.State() == arcade.BlitzRunning {
			return m, blitzTick()
		}
	}
	return m, nil
}

func (m blitzModel) View() string {
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconGame, "Tap Blitz") + "\n\n")
	b.WriteString(fmt.Sprintf("%s %ds   %s\n",
		ui.Key.Render("⏱"), m.session.TimeLeft(),
		ui.Warn.Render(fmt.Sprintf("%d taps", m.session.Score()))))
	b.WriteString("\n")

	switch m.session.State() {
	case arcade.BlitzIdle:
		b.WriteString("Press space to START, then tap as fast as you can!\n")
	case arcade.BlitzRunning:
		b.WriteString(ui.Good.Render("TAP! (space)") + "\n")
	case arcade.BlitzFinished:
		b.WriteString(fmt.Sprintf("Time's up! Score %d • Earned %d %s\n",
			m.session.Score(), m.reward, ui.IconCoin))
		if m.session.Celebrate() {
			b.WriteString(ui.Celebration("Blazing fingers!") + "\n")
		}
		b.WriteString(ui.Muted.Render("r to try again") + "\n")
	}

	b.WriteString(ui.Muted.Render("q to leave") + "\n")
	return ui.Panel.Render(b.String())
}
