package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Row is one rendered result: a missing permission-set name and its
// description (empty when the reference table has no entry).
type Row struct {
	Name        string
	Description string
}

// Results renders the outcome of a comparison in a scrollable viewport.
// Three display states: no comparison run yet, an empty diff ("no missing
// permissions"), and a list of missing names with descriptions. The empty
// diff is a real core result; the informational row is presentation only.
type Results struct {
	title    string
	rows     []Row
	compared bool
	focused  bool
	viewport viewport.Model
	width    int
}

// NewResults creates the results panel.
func NewResults() Results {
	return Results{
		title:    "Missing Permissions (Mirror has, User needs)",
		viewport: viewport.New(40, 10),
	}
}

// SetSize sets the inner viewport dimensions (excluding the border).
func (r *Results) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	r.width = width
	r.viewport.Width = width
	r.viewport.Height = height
	r.refresh()
}

// SetFocused toggles keyboard scrolling and the focus frame.
func (r *Results) SetFocused(focused bool) {
	r.focused = focused
}

// SetRows installs a comparison result. A nil or empty slice means the diff
// was empty, which renders the informational row.
func (r *Results) SetRows(rows []Row) {
	r.rows = rows
	r.compared = true
	r.refresh()
	r.viewport.GotoTop()
}

// Rows returns the current result rows.
func (r Results) Rows() []Row {
	return r.rows
}

// Compared reports whether a comparison has been run.
func (r Results) Compared() bool {
	return r.compared
}

// Update handles scrolling keys when focused.
func (r Results) Update(msg tea.Msg) (Results, tea.Cmd) {
	if !r.focused {
		return r, nil
	}
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return r, cmd
}

// refresh rebuilds the viewport content from the current rows.
func (r *Results) refresh() {
	var lines []string
	switch {
	case !r.compared:
		lines = append(lines,
			HintStyle.Render("Paste both lists, then press Ctrl+R to compare."))
	case len(r.rows) == 0:
		lines = append(lines,
			AllCoveredStyle.Render("No missing permissions."),
			HintStyle.Render("The user already has all permission sets listed for the mirror user."))
	default:
		for _, row := range r.rows {
			lines = append(lines, renderRow(row, r.width))
		}
	}
	r.viewport.SetContent(strings.Join(lines, "\n"))
}

// renderRow lays out one name/description pair. The description wraps under
// itself, indented past the name column.
func renderRow(row Row, width int) string {
	name := MissingNameStyle.Render(row.Name)
	if row.Description == "" {
		return name
	}
	descWidth := width - lipgloss.Width(name) - 2
	if descWidth < 16 {
		// Too narrow for two columns; stack the description underneath.
		desc := DescriptionStyle.Width(width).Render(row.Description)
		return name + "\n" + desc
	}
	desc := DescriptionStyle.Width(descWidth).Render(row.Description)
	return lipgloss.JoinHorizontal(lipgloss.Top, name+"  ", desc)
}

// View renders the framed results panel.
func (r Results) View() string {
	frame := BlurredPaneStyle
	title := BlurredPaneTitleStyle.Render(r.title)
	if r.focused {
		frame = FocusedPaneStyle
		title = PaneTitleStyle.Render(r.title)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, frame.Render(r.viewport.View()))
}
