package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"palplanner/internal/pet"
	"palplanner/internal/shop"
	"palplanner/internal/task"
)

// PalPlanner theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconPet     = "🐾"
	IconHappy   = "😊"
	IconNeutral = "😐"
	IconSad     = "😢"
	IconTask    = "📋"
	IconDone    = "✅"
	IconFailed  = "❌"
	IconPoints  = "🪙"
	IconShop    = "🛍️"
	IconFood    = "🍽️"
	IconToy     = "🎮"
	IconShirt   = "👕"
	IconCrown   = "👑"
	IconBell    = "🔔"
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

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
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

func Points(n int) string {
	return Gold.Render(fmt.Sprintf("%s %d PalPoints", IconPoints, n))
}

func StatusText(status task.Status) string {
	switch status {
	case task.StatusCompleted:
		return Good.Render("completed")
	case task.StatusPending:
		return Warn.Render("pending")
	case task.StatusFailed:
		return Bad.Render("failed")
	default:
		return Muted.Render(string(status))
	}
}

func MoodText(m pet.Mood) string {
	switch m {
	case pet.MoodHappy:
		return Good.Render(IconHappy + " happy")
	case pet.MoodNeutral:
		return Warn.Render(IconNeutral + " neutral")
	case pet.MoodSad:
		return Bad.Render(IconSad + " sad")
	default:
		return Muted.Render(string(m))
	}
}

func CategoryIcon(c shop.Category) string {
	switch c {
	case shop.CategoryFood:
		return IconFood
	case shop.CategoryToy:
		return IconToy
	case shop.CategoryClothing:
		return IconShirt
	case shop.CategoryAccessory:
		return IconCrown
	default:
		return IconShop
	}
}
