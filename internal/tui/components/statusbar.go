package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/quarryworks/shelflife/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// file name and budget on the right.
func RenderStatusBar(width int, file, budget string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [/]search  [+/-]budget  [o]pen  [?]help  [q]uit"
	right := ""
	if file != "" {
		right = fmt.Sprintf("%s │ budget %s ", file, budget)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
