// Package tokenize splits a single line of pasted report text into candidate
// tokens. Pasted tabular data is ambiguous about its delimiter, so strategies
// are tried in order from most to least information-preserving: tabs imply
// genuine column structure, then runs of spacing, then commas, then the whole
// line as a single token.
package tokenize

import (
	"regexp"
	"strings"
)

var multiSpaceRe = regexp.MustCompile(`\s{2,}`)

// Strategy attempts one tokenization of a line. It returns the tokens and
// true when the strategy applies, or nil and false when it does not.
type Strategy func(line string) ([]string, bool)

// strategies in priority order. The first that applies wins.
var strategies = []Strategy{
	TabSplit,
	MultiSpaceSplit,
	CommaSplit,
}

// Tokenize splits a raw line into trimmed, non-empty tokens using the first
// applicable strategy. It always returns at least one token for a non-blank
// line: the final fallback is the whole trimmed line.
func Tokenize(line string) []string {
	for _, s := range strategies {
		if tokens, ok := s(line); ok {
			return tokens
		}
	}
	return []string{strings.TrimSpace(line)}
}

// TabSplit splits on tab characters. Presence of a tab is authoritative:
// the result is returned even when it contains a single token, since a tab
// proves the line had column structure.
func TabSplit(line string) ([]string, bool) {
	if !strings.Contains(line, "\t") {
		return nil, false
	}
	return trimAll(strings.Split(line, "\t")), true
}

// MultiSpaceSplit splits the trimmed line on runs of two or more whitespace
// characters. It applies only when the split yields more than one token;
// a single token means the spacing carried no column information.
func MultiSpaceSplit(line string) ([]string, bool) {
	tokens := trimAll(multiSpaceRe.Split(strings.TrimSpace(line), -1))
	if len(tokens) > 1 {
		return tokens, true
	}
	return nil, false
}

// CommaSplit splits on commas when the line contains at least one.
func CommaSplit(line string) ([]string, bool) {
	if !strings.Contains(line, ",") {
		return nil, false
	}
	return trimAll(strings.Split(line, ",")), true
}

// trimAll trims each piece and drops the empty ones.
func trimAll(pieces []string) []string {
	tokens := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
