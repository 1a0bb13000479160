package permset_test

import (
	"strings"
	"testing"

	"github.com/j-convey/Permission-Set-Comparator/internal/permset"
	"github.com/stretchr/testify/assert"
)

func TestExtractAll(t *testing.T) {
	t.Run("dedup keeps first-seen order", func(t *testing.T) {
		got := permset.ExtractAll("Alpha\nBeta\nAlpha\nGamma")
		assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, got)
	})

	t.Run("dedup is case-sensitive", func(t *testing.T) {
		got := permset.ExtractAll("Alpha\nalpha")
		assert.Equal(t, []string{"Alpha", "alpha"}, got)
	})

	t.Run("noise rows dropped", func(t *testing.T) {
		input := strings.Join([]string{
			"Permission Set Name\tAction\tDate",
			"Sales_Admin\tadd\t1/2/24",
			"Remove 3/4/2024",
			"",
			"View_All, add, 2/3/24",
		}, "\n")
		got := permset.ExtractAll(input)
		assert.Equal(t, []string{"Sales_Admin", "View_All"}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, permset.ExtractAll(""))
	})
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Alpha\nBeta\nAlpha\nGamma",
		"Permission Set Name\tAction\nSales_Admin\tadd\t1/2/24\nRemove 3/4/2024",
		"View_All, add, 2/3/24\n\n\nView_All",
		"",
	}
	for _, input := range inputs {
		once := permset.Normalize(input)
		assert.Equal(t, once, permset.Normalize(once), "input %q", input)
	}
}

func TestNormalizeConvergesOnCommaGluedNames(t *testing.T) {
	// A 2+ space run beats the comma strategy, so the first pass leaves the
	// comma glued to the name; the second pass comma-splits it away.
	// Normalization settles by the second pass rather than being a strict
	// fixpoint for such lines.
	input := "View_All,  add, 2/3/24\nView_All"

	once := permset.Normalize(input)
	assert.Equal(t, "View_All,\nView_All", once)

	twice := permset.Normalize(once)
	assert.Equal(t, "View_All", twice)
	assert.Equal(t, twice, permset.Normalize(twice))
}

func TestToSet(t *testing.T) {
	set := permset.ToSet("Alpha\nBeta\nAlpha")
	assert.Len(t, set, 2)
	assert.Contains(t, set, "Alpha")
	assert.Contains(t, set, "Beta")
}

func TestDiff(t *testing.T) {
	t.Run("mirror minus user, case-folded sort", func(t *testing.T) {
		got := permset.Diff("A\nB", "A\nB\nC\nd")
		assert.Equal(t, []string{"C", "d"}, got)
	})

	t.Run("empty when sets match", func(t *testing.T) {
		got := permset.Diff("Alpha\nBeta", "Beta\nAlpha")
		assert.Empty(t, got)
	})

	t.Run("case differs only", func(t *testing.T) {
		// Membership is exact-string: "alpha" is missing even though the
		// user holds "Alpha". The stable sort keeps extraction order for
		// the case-folded tie.
		got := permset.Diff("Alpha", "alpha\nAlpha\nALPHA")
		assert.Equal(t, []string{"alpha", "ALPHA"}, got)
	})

	t.Run("sort ignores case", func(t *testing.T) {
		got := permset.Diff("", "b_Perm\nA_perm\nC_Perm\na_Other")
		assert.Equal(t, []string{"a_Other", "A_perm", "b_Perm", "C_Perm"}, got)
	})

	t.Run("noise in either side ignored", func(t *testing.T) {
		user := "Permission Set Name\tAction\nAlpha\tadd\t1/1/24"
		mirror := "Alpha\nBeta\tremove\t2/2/24\nRemove 3/3/24"
		assert.Equal(t, []string{"Beta"}, permset.Diff(user, mirror))
	})
}
