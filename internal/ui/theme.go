package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles styles, symbols and the panel border.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected                                      lipgloss.Style
	DeleteBox, InfoBox, Banner                    lipgloss.Style
	TabActive, TabInactive                        lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	SymDelete, SymInfo, SymBullet, SymOK, SymFail string
}

var current = classic()

// SetTheme switches the active theme; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = neon()
	case "mono":
		lipgloss.SetColorProfile(termenv.Ascii)
		current = mono()
	default:
		current = classic()
	}
}

// Current returns the active theme.
func Current() Theme { return current }

func classic() Theme {
	return Theme{
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		DeleteBox:   lipgloss.NewStyle().Background(lipgloss.Color("1")).Foreground(lipgloss.Color("15")).Padding(0, 1),
		InfoBox:     lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")).Padding(0, 1),
		Banner:      lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("15")).Padding(0, 2),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")).Padding(0, 2),
		TabInactive: lipgloss.NewStyle().Faint(true).Padding(0, 2),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		SymDelete:   "🗑",
		SymInfo:     "ℹ",
		SymBullet:   "•",
		SymOK:       "✔",
		SymFail:     "✖",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.Banner = t.Banner.Background(lipgloss.Color("5"))
	t.TabActive = t.TabActive.Foreground(lipgloss.Color("13"))
	t.BorderColor = lipgloss.Color("13")
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:        "mono",
		Title:       plain,
		Muted:       plain,
		Accent:      plain,
		Success:     plain,
		Error:       plain,
		Pending:     plain,
		Selected:    plain,
		DeleteBox:   plain.Padding(0, 1),
		InfoBox:     plain.Padding(0, 1),
		Banner:      plain.Padding(0, 2),
		TabActive:   plain.Padding(0, 2).Underline(true),
		TabInactive: plain.Padding(0, 2),
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.NoColor{},
		SymDelete:   "[del]",
		SymInfo:     "[i]",
		SymBullet:   "-",
		SymOK:       "ok",
		SymFail:     "x",
	}
}
