package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorSilver = lipgloss.Color("#bdae93")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleSilver = lipgloss.NewStyle().Foreground(ColorSilver)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// MedalIndicator renders a phase medal such as "★ GOLD".
func MedalIndicator(m domain.Medal) string {
	switch m {
	case domain.MedalGold:
		return StyleYellow.Render("★ GOLD")
	case domain.MedalSilver:
		return StyleSilver.Render("☆ SILVER")
	default:
		return StyleDim.Render("· open")
	}
}

// DayStyle returns the style used for a day in the given state.
func DayStyle(s progression.DayState) lipgloss.Style {
	switch s {
	case progression.DayCompleted:
		return StyleGreen
	case progression.DayExcused:
		return StyleYellow
	case progression.DayMissed:
		return StyleRed
	case progression.DayCurrent:
		return StyleBlue.Bold(true)
	default:
		return StyleDim
	}
}

// DayGlyph is the single-cell marker for a day state on the path grid.
func DayGlyph(s progression.DayState) string {
	var g string
	switch s {
	case progression.DayCompleted:
		g = "●"
	case progression.DayExcused:
		g = "◐"
	case progression.DayMissed:
		g = "○"
	case progression.DayCurrent:
		g = "◆"
	default:
		g = "·"
	}
	return DayStyle(s).Render(g)
}

// DayStateLabel renders the state name in its color.
func DayStateLabel(s progression.DayState) string {
	return DayStyle(s).Render(strings.ToUpper(string(s)))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
