package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultsInitialHint(t *testing.T) {
	r := NewResults()
	r.SetSize(80, 10)
	assert.False(t, r.Compared())
	assert.Contains(t, r.View(), "Ctrl+R")
}

func TestResultsRenderRows(t *testing.T) {
	r := NewResults()
	r.SetSize(80, 10)
	r.SetRows([]Row{
		{Name: "Flow_Access", Description: `Grants "flow" access`},
		{Name: "View_All"},
	})

	view := r.View()
	assert.Contains(t, view, "Flow_Access")
	assert.Contains(t, view, `Grants "flow" access`)
	assert.Contains(t, view, "View_All")
}

func TestResultsEmptyDiff(t *testing.T) {
	r := NewResults()
	r.SetSize(80, 10)
	r.SetRows(nil)

	assert.True(t, r.Compared())
	assert.Empty(t, r.Rows())
	view := r.View()
	assert.Contains(t, view, "No missing permissions.")
	assert.Contains(t, view, "already has all permission sets")
}

func TestResultsEmptyDiffDistinctFromRows(t *testing.T) {
	r := NewResults()
	r.SetSize(80, 10)
	r.SetRows([]Row{{Name: "No missing permissions."}})

	// A literal name that happens to match the placeholder text is still a
	// one-row result, not the empty state.
	assert.Len(t, r.Rows(), 1)
}
