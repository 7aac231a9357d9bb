package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HabitHatch theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconEgg     = "🥚"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTodo    = "⭕"
	IconCoin    = "🪙"
	IconGem     = "💎"
	IconFlame   = "🔥"
	IconHeart   = "💖"
	IconShop    = "🛍️"
	IconGame    = "🎮"
	IconSave    = "💾"
	IconWarn    = "⚠️"
	IconError   = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	CardDown   = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary).Padding(0, 1)
	CardUp     = lipgloss.NewStyle().Padding(0, 1)

	BadgeStageUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("⭐ STAGE UP ⭐")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Celebration renders the confetti-equivalent banner for level-ups and big
// arcade wins.
func Celebration(text string) string {
	return Gold.Render("🎉 " + text + " 🎉")
}

func HabitIcon(completed bool) string {
	if completed {
		return IconDone
	}
	return IconTodo
}
