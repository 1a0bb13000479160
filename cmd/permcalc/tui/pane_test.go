package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func typeRunes(t *testing.T, p Pane, s string) Pane {
	t.Helper()
	for _, r := range s {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return p
}

func TestPaneNormalizesOnSet(t *testing.T) {
	p := NewPane("Primary User", "")
	p.SetValue("Permission Set Name\tAction\nSales_Admin\tadd\t1/2/24\nRemove 3/4/2024\nView_All")
	assert.Equal(t, "Sales_Admin\nView_All", p.Value())
	assert.Equal(t, []string{"Sales_Admin", "View_All"}, p.Names())
}

func TestPaneDedupesOnSet(t *testing.T) {
	p := NewPane("Primary User", "")
	p.SetValue("Alpha\nBeta\nAlpha\nGamma")
	assert.Equal(t, "Alpha\nBeta\nGamma", p.Value())
}

func TestPaneLeavesCleanInputAlone(t *testing.T) {
	p := NewPane("Primary User", "")
	p.Focus()
	p = typeRunes(t, p, "Sales_Admin")
	assert.Equal(t, "Sales_Admin", p.Value())
}

func TestPaneSanitizesWhileTyping(t *testing.T) {
	p := NewPane("Primary User", "")
	p.Focus()
	p.SetValue("Alpha")
	// A trailing comma splits the line; the empty second piece is dropped
	// and normalization rewrites the buffer back to the name.
	p = typeRunes(t, p, ",")
	assert.Equal(t, "Alpha", p.Value())
}

func TestPanePasteKeepsTabDelimiters(t *testing.T) {
	p := NewPane("Primary User", "")
	p.Focus()
	p = typeRunes(t, p, "Base_User")

	p, _ = p.Update(tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune("Permission Set Name\tAction\nSales_Admin\tadd\t1/2/24"),
		Paste: true,
	})
	assert.Equal(t, "Base_User\nSales_Admin", p.Value())
}

func TestPaneIgnoresKeysWhenBlurred(t *testing.T) {
	p := NewPane("Primary User", "")
	p = typeRunes(t, p, "xyz")
	assert.Equal(t, "", p.Value())
}

func TestPaneClear(t *testing.T) {
	p := NewPane("Primary User", "")
	p.SetValue("Alpha\nBeta")
	p.SetValue("")
	assert.Equal(t, "", p.Value())
	assert.Empty(t, p.Names())
}
