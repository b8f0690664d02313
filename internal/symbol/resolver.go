// Package symbol resolves human-readable stock names to exchange ticker
// codes against a symbol directory.
package symbol

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when neither exact nor substring matching yields a
// directory entry.
var ErrNotFound = errors.New("symbol not found")

// Entry is one row of the symbol directory.
type Entry struct {
	TSCode     string `json:"ts_code"`
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	Area       string `json:"area,omitempty"`
	Industry   string `json:"industry,omitempty"`
	ListDate   string `json:"list_date,omitempty"`
	ListStatus string `json:"list_status,omitempty"`
}

// Directory is a snapshot of the listed-stock directory. It is fetched once
// per resolution call and never cached across calls.
type Directory []Entry

// Resolve looks up name by exact display-name match, then falls back to
// substring match. Among multiple substring candidates the shortest display
// name wins; ties break on lexicographic ticker code, so the result does not
// depend on directory order.
func (d Directory) Resolve(name string) (Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, fmt.Errorf("resolve %q: %w", name, ErrNotFound)
	}

	for _, e := range d {
		if e.Name == name {
			return e, nil
		}
	}

	var candidates []Entry
	for _, e := range d {
		if strings.Contains(e.Name, name) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return Entry{}, fmt.Errorf("resolve %q: %w", name, ErrNotFound)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i].Name) != len(candidates[j].Name) {
			return len(candidates[i].Name) < len(candidates[j].Name)
		}
		return candidates[i].TSCode < candidates[j].TSCode
	})
	return candidates[0], nil
}

// FindTicker returns the entry whose ticker code equals tsCode, if any.
func (d Directory) FindTicker(tsCode string) (Entry, bool) {
	for _, e := range d {
		if e.TSCode == tsCode {
			return e, true
		}
	}
	return Entry{}, false
}
