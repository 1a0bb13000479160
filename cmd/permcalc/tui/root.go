// Package tui implements the interactive comparison screen: two paste panes
// (primary and mirror user), a results panel, and a status bar.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-convey/Permission-Set-Comparator/internal/descriptions"
	"github.com/j-convey/Permission-Set-Comparator/internal/permset"
)

// FocusZone identifies which component receives keystrokes.
type FocusZone int

const (
	FocusUser FocusZone = iota
	FocusMirror
	FocusResults
)

// Model is the root bubbletea model composing the comparison screen.
type Model struct {
	userPane   Pane
	mirrorPane Pane
	results    Results
	statusBar  StatusBar

	// Reference table, loaded once at startup; read-only.
	table descriptions.Table

	focusZone     FocusZone
	showHelp      bool
	width, height int
	ready         bool // set after first WindowSizeMsg
	quitting      bool
}

// NewModel creates the root model. The description table is owned by the
// caller and only read here.
func NewModel(table descriptions.Table) Model {
	m := Model{
		userPane:   NewPane("Primary User", "Paste primary user's permissions here..."),
		mirrorPane: NewPane("Mirror User", "Paste mirror user's permissions here..."),
		results:    NewResults(),
		statusBar:  NewStatusBar(),
		table:      table,
		focusZone:  FocusUser,
	}
	m.userPane.Focus()
	return m
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.distributeSize()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "ctrl+g", "esc", "q":
				m.showHelp = false
			case "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.setFocus(m.nextZone(1))
			return m, nil
		case "shift+tab":
			m.setFocus(m.nextZone(-1))
			return m, nil
		case "ctrl+r":
			m.compare()
			return m, nil
		case "ctrl+g":
			m.showHelp = true
			return m, nil
		case "ctrl+l":
			switch m.focusZone {
			case FocusUser:
				m.userPane.SetValue("")
			case FocusMirror:
				m.mirrorPane.SetValue("")
			}
			m.syncCounts()
			return m, nil
		}
	}

	// Route everything else to the focused component.
	var cmd tea.Cmd
	switch m.focusZone {
	case FocusUser:
		m.userPane, cmd = m.userPane.Update(msg)
	case FocusMirror:
		m.mirrorPane, cmd = m.mirrorPane.Update(msg)
	case FocusResults:
		m.results, cmd = m.results.Update(msg)
	}
	m.syncCounts()
	return m, cmd
}

// compare runs the diff over both panes and fills the results panel.
func (m *Model) compare() {
	missing := permset.Diff(m.userPane.Value(), m.mirrorPane.Value())
	rows := make([]Row, 0, len(missing))
	for _, name := range missing {
		rows = append(rows, Row{Name: name, Description: m.table.Lookup(name)})
	}
	m.results.SetRows(rows)
	m.statusBar.SetMissing(len(rows))
	m.setFocus(FocusResults)
}

// syncCounts refreshes the status bar extraction counts.
func (m *Model) syncCounts() {
	m.statusBar.SetCounts(len(m.userPane.Names()), len(m.mirrorPane.Names()))
}

// nextZone cycles focus in the given direction.
func (m Model) nextZone(dir int) FocusZone {
	const zones = 3
	return FocusZone((int(m.focusZone) + dir + zones) % zones)
}

// setFocus moves keyboard focus to the given zone.
func (m *Model) setFocus(zone FocusZone) {
	m.focusZone = zone
	m.userPane.Blur()
	m.mirrorPane.Blur()
	m.results.SetFocused(false)
	switch zone {
	case FocusUser:
		m.userPane.Focus()
	case FocusMirror:
		m.mirrorPane.Focus()
	case FocusResults:
		m.results.SetFocused(true)
	}
}

// distributeSize splits the window between the paste panes, the results
// panel, and the status bar.
func (m *Model) distributeSize() {
	const (
		headerHeight = 1
		statusHeight = 1
		paneChrome   = 3 // title line + top/bottom border
	)

	main := m.height - headerHeight - statusHeight
	inputZone := main * 2 / 5
	if inputZone < 5 {
		inputZone = 5
	}
	resultsZone := main - inputZone
	if resultsZone < 4 {
		resultsZone = 4
	}

	paneWidth := m.width/2 - 2 // per-pane border
	m.userPane.SetSize(paneWidth-2, inputZone-paneChrome)
	m.mirrorPane.SetSize(paneWidth-2, inputZone-paneChrome)
	m.results.SetSize(m.width-4, resultsZone-paneChrome)
	m.statusBar.SetWidth(m.width)
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return helpView(m.width, m.height)
	}

	header := HeaderStyle.Render("Permission Set Comparator")
	panes := lipgloss.JoinHorizontal(lipgloss.Top, m.userPane.View(), m.mirrorPane.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		panes,
		m.results.View(),
		m.statusBar.View(),
	)
}
