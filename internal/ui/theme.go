package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LitterQuest theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconMonster   = "👾"
	IconLeaf      = "🌿"
	IconPin       = "📍"
	IconTrophy    = "🏆"
	IconBell      = "🔔"
	IconSparkle   = "✨"
	IconMegaphone = "📣"
	IconHandshake = "🤝"
	IconMail      = "💌"
	IconError     = "🧨"
	IconWarn      = "⚠️"
)

var (
	cPrimary = lipgloss.Color("35")  // green
	cAccent  = lipgloss.Color("45")  // cyan
	cGood    = lipgloss.Color("42")  // bright green
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

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
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

// SeverityText renders a hotspot severity with its warning color.
func SeverityText(severity string) string {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "high":
		return Bad.Render("high")
	case "medium":
		return Warn.Render("medium")
	case "low":
		return Good.Render("low")
	default:
		return Muted.Render(severity)
	}
}

// RarityText renders a monster rarity.
func RarityText(rarity string) string {
	switch strings.ToLower(strings.TrimSpace(rarity)) {
	case "rare":
		return Gold.Render("rare")
	case "uncommon":
		return H2.Render("uncommon")
	case "common":
		return Muted.Render("common")
	default:
		return Muted.Render(rarity)
	}
}

// WasteIcon maps a waste type to its marker emoji.
func WasteIcon(wasteType string) string {
	switch strings.ToLower(strings.TrimSpace(wasteType)) {
	case "plastic":
		return "🧴"
	case "paper":
		return "📦"
	case "metal":
		return "🥫"
	case "glass":
		return "🫙"
	default:
		return IconMonster
	}
}
