package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-convey/Permission-Set-Comparator/internal/permset"
)

// Pane is one paste buffer ("Primary User" or "Mirror User"). Whatever the
// operator types or pastes is continuously re-normalized: after every change
// the buffer is replaced with the extracted permission-set names, one per
// line, whenever that differs from the current content.
type Pane struct {
	title string
	input textarea.Model
}

// NewPane creates a paste pane with the given title and placeholder.
func NewPane(title, placeholder string) Pane {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	// Pasted reports run to hundreds of lines; lift the textarea's default
	// content caps.
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	return Pane{title: title, input: ta}
}

// Focus directs keystrokes to this pane.
func (p *Pane) Focus() {
	p.input.Focus()
}

// Blur stops this pane from receiving keystrokes.
func (p *Pane) Blur() {
	p.input.Blur()
}

// Focused reports whether the pane receives keystrokes.
func (p Pane) Focused() bool {
	return p.input.Focused()
}

// SetSize sets the inner text area dimensions (excluding the border).
func (p *Pane) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	p.input.SetWidth(width)
	p.input.SetHeight(height)
}

// SetValue replaces the buffer content with the normalized form of text.
// Normalization happens before the textarea sees the text: the textarea's
// input sanitizer flattens tabs to spaces, which would destroy the strongest
// column delimiter of pasted reports.
func (p *Pane) SetValue(text string) {
	p.input.SetValue(permset.Normalize(text))
}

// Value returns the current (normalized) buffer content.
func (p Pane) Value() string {
	return p.input.Value()
}

// Names returns the permission-set names currently held by the pane.
func (p Pane) Names() []string {
	return permset.ExtractAll(p.input.Value())
}

// Update routes messages to the underlying textarea and re-normalizes the
// buffer after any change. Bracketed pastes are normalized before insertion
// so tab delimiters survive (see SetValue); pastes append to the existing
// names, cursor at the end, like the original report-pasting flow.
func (p Pane) Update(msg tea.Msg) (Pane, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Paste && p.input.Focused() {
		text := p.input.Value()
		if text == "" {
			text = string(key.Runes)
		} else {
			text += "\n" + string(key.Runes)
		}
		p.SetValue(text)
		return p, nil
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.sanitize()
	}
	return p, cmd
}

// sanitize rewrites the buffer as extracted names, one per line. The buffer
// is only replaced when the normalized text differs, so the cursor is left
// alone while typing clean input. SetValue leaves the cursor at the end,
// matching what an operator expects right after a paste.
func (p *Pane) sanitize() {
	text := p.input.Value()
	normalized := permset.Normalize(text)
	if text == normalized {
		return
	}
	p.input.SetValue(normalized)
}

// View renders the framed pane with its title.
func (p Pane) View() string {
	frame := BlurredPaneStyle
	title := BlurredPaneTitleStyle.Render(p.title)
	if p.input.Focused() {
		frame = FocusedPaneStyle
		title = PaneTitleStyle.Render(p.title)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, frame.Render(p.input.View()))
}
