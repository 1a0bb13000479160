// Package permset extracts canonical permission-set names from freeform
// pasted report text and computes set differences between two extractions.
//
// Pasted reports interleave genuine name rows with table headers and
// "add/delete <date>" audit rows. Extraction strips the noise and keeps the
// first meaningful column of each row.
//
// Case handling is deliberately mixed and matches the behavior operators
// rely on: dedup and diff membership compare exact strings, while the final
// sort (and downstream description lookup) fold case. Two names differing
// only by case are therefore distinct permission sets.
package permset

import (
	"regexp"
	"strings"

	"github.com/j-convey/Permission-Set-Comparator/internal/tokenize"
)

var (
	dateRe       = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`)
	actionDateRe = regexp.MustCompile(`(?i)^(?:add|del|delete|remove)\s+\d{1,2}/\d{1,2}/\d{2,4}$`)
)

func isActionWord(lowered string) bool {
	switch lowered {
	case "add", "del", "delete", "remove":
		return true
	}
	return false
}

// Extract returns the permission-set name carried by one raw line, or false
// when the line is blank, a table header, an action+date audit row, or
// contains nothing but noise tokens.
func Extract(rawLine string) (string, bool) {
	line := strings.TrimSpace(rawLine)
	if line == "" {
		return "", false
	}

	lowered := strings.ToLower(line)
	if strings.Contains(lowered, "permission set name") && strings.Contains(lowered, "action") {
		return "", false
	}
	if actionDateRe.MatchString(line) {
		return "", false
	}

	tokens := tokenize.Tokenize(rawLine)
	if len(tokens) == 0 {
		return "", false
	}

	for _, token := range tokens {
		trimmed := strings.TrimSpace(token)
		if trimmed == "" {
			continue
		}
		lt := strings.ToLower(trimmed)
		if isActionWord(lt) {
			continue
		}
		if dateRe.MatchString(trimmed) {
			continue
		}
		if strings.Contains(lt, "expires on") || strings.Contains(lt, "date assigned") {
			continue
		}
		// Header text leaked into a single token; the whole line is noise.
		if strings.Contains(lt, "permission set name") {
			return "", false
		}
		return trimmed, true
	}

	// Every token was skipped. Fall back to the first column unless it is
	// itself an action word or a bare date.
	fallback := strings.TrimSpace(tokens[0])
	if fallback == "" {
		return "", false
	}
	if isActionWord(strings.ToLower(fallback)) || dateRe.MatchString(fallback) {
		return "", false
	}
	return fallback, true
}
