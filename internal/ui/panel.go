package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a Unicode bar of width cells, filled to done/total.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	if done < 0 {
		done = 0
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Panel frames lines with the current theme's border.
func Panel(lines []string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Counts renders the "Swipe to Delete   • 3  Created 4" header.
func Counts(title string, live, created int) string {
	t := Current()
	return fmt.Sprintf("%s   %s %d  %s %d",
		t.Title.Render(title),
		t.Pending.Render(t.SymBullet), live,
		t.Accent.Render("Created"), created,
	)
}
