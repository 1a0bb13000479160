// Package descriptions loads the permission-set reference CSV and answers
// description lookups. The table is built once at startup and read-only
// afterwards; descriptions are supplementary, so a missing or unreadable
// file degrades to an empty table instead of failing.
package descriptions

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column layout of the reference CSV. The first two columns are report
// metadata the tool does not use.
const (
	nameColumn = 2
	descColumn = 3
)

// Table maps lowercased permission-set names to their descriptions.
type Table struct {
	byName map[string]string
}

// Empty returns a table with no entries. Every lookup misses.
func Empty() Table {
	return Table{byName: map[string]string{}}
}

// New builds a table from explicit name/description pairs. Keys are
// lowercased; useful for tests and for callers that already have the data.
func New(pairs map[string]string) Table {
	byName := make(map[string]string, len(pairs))
	for name, desc := range pairs {
		byName[strings.ToLower(name)] = desc
	}
	return Table{byName: byName}
}

// Load reads the reference CSV at path. The header row is skipped, rows with
// fewer than four fields are skipped, and quoting follows CSV conventions
// (doubled quotes inside a quoted field unescape to one).
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Empty(), fmt.Errorf("open reference csv %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	byName := make(map[string]string)
	header := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed row: skip it, keep loading the rest.
			continue
		}
		if header {
			header = false
			continue
		}
		if len(record) < 4 {
			continue
		}
		name := strings.TrimSpace(record[nameColumn])
		if name == "" {
			continue
		}
		byName[strings.ToLower(name)] = strings.TrimSpace(record[descColumn])
	}

	return Table{byName: byName}, nil
}

// LoadOrEmpty is Load with the missing-file case flattened away: any load
// failure yields the empty table.
func LoadOrEmpty(path string) Table {
	t, err := Load(path)
	if err != nil {
		return Empty()
	}
	return t
}

// Lookup returns the description for name, matching case-insensitively.
// Unknown names return the empty string.
func (t Table) Lookup(name string) string {
	return t.byName[strings.ToLower(name)]
}

// Len reports how many reference rows loaded.
func (t Table) Len() int {
	return len(t.byName)
}
