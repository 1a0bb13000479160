package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders the bottom row with extraction counts and key hints.
type StatusBar struct {
	userCount   int
	mirrorCount int
	missing     int
	compared    bool
	width       int
}

// NewStatusBar creates a status bar with zero counts.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetCounts refreshes the per-pane extraction counts.
func (s *StatusBar) SetCounts(user, mirror int) {
	s.userCount = user
	s.mirrorCount = mirror
}

// SetMissing records the size of the last comparison result.
func (s *StatusBar) SetMissing(n int) {
	s.missing = n
	s.compared = true
}

// View renders the status bar.
func (s StatusBar) View() string {
	missing := "–"
	if s.compared {
		missing = fmt.Sprintf("%d", s.missing)
	}
	leftPart := fmt.Sprintf("user: %d · mirror: %d · missing: %s",
		s.userCount, s.mirrorCount, missing)

	shortcuts := []string{
		StatusBarKeyStyle.Render("Ctrl+R") + ": compare",
		StatusBarKeyStyle.Render("Tab") + ": switch pane",
		StatusBarKeyStyle.Render("Ctrl+G") + ": help",
	}
	rightPart := strings.Join(shortcuts, " · ")

	leftWidth := ansi.StringWidth(leftPart)
	rightWidth := ansi.StringWidth(rightPart)
	availableWidth := s.width - 2 // account for StatusBarStyle padding
	gap := availableWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	content := leftPart + strings.Repeat(" ", gap) + rightPart

	return StatusBarStyle.Width(s.width).Render(content)
}
