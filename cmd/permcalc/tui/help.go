package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// helpEntries lists the key bindings shown in the help overlay.
var helpEntries = []struct {
	key  string
	desc string
}{
	{"Ctrl+R", "compare the two panes"},
	{"Tab / Shift+Tab", "cycle focus: primary → mirror → results"},
	{"Ctrl+L", "clear the focused pane"},
	{"↑/↓, PgUp/PgDn", "scroll results (when focused)"},
	{"Ctrl+G", "toggle this help"},
	{"Ctrl+C", "quit"},
}

// helpView renders the help overlay centered in the given area.
func helpView(width, height int) string {
	keyWidth := 0
	for _, e := range helpEntries {
		if w := ansi.StringWidth(e.key); w > keyWidth {
			keyWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Key bindings"))
	b.WriteString("\n\n")
	for _, e := range helpEntries {
		key := HelpKeyStyle.Render(e.key) + strings.Repeat(" ", keyWidth-ansi.StringWidth(e.key))
		b.WriteString(key + "  " + e.desc + "\n")
	}
	b.WriteString("\n")
	b.WriteString(HintStyle.Render("Pasted text is cleaned as you go: headers,\nadd/remove audit rows, and dates are dropped."))

	box := HelpBoxStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
