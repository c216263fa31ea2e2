// Package catalog holds the fixed nutrition lookup table.
package catalog

import (
	"fmt"
	"strings"

	"nutrisearch/internal/models"
	"nutrisearch/internal/validation"
)

// QuickSearchCount is how many leading entries are offered as quick searches.
const QuickSearchCount = 7

// Entry is one row of the lookup table.
type Entry struct {
	Key    string
	Label  string
	Record models.NutritionRecord
}

// Table maps normalized food names to nutrition records. It is read-only
// once built.
type Table struct {
	entries []Entry
	byKey   map[string]int
}

// New builds a table from entries. Keys are normalized and must be unique.
func New(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		byKey:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		key := validation.NormalizeQuery(e.Key)
		if key == "" {
			return nil, fmt.Errorf("entry %q: %w", e.Label, ErrEmptyKey)
		}
		if _, exists := t.byKey[key]; exists {
			return nil, fmt.Errorf("entry %q: %w", key, ErrDuplicateKey)
		}
		e.Key = key
		t.byKey[key] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// Lookup normalizes the query and returns the matching record and key.
// Returns ErrFoodNotFound when no entry matches exactly.
func (t *Table) Lookup(query string) (models.NutritionRecord, string, error) {
	key := validation.NormalizeQuery(query)
	i, ok := t.byKey[key]
	if !ok {
		return models.NutritionRecord{}, key, fmt.Errorf("%q: %w", query, ErrFoodNotFound)
	}
	return t.entries[i].Record, key, nil
}

// Entries returns a copy of the table rows in definition order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Keys returns the normalized keys in definition order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.Key
	}
	return keys
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Labels returns the display labels in definition order.
func (t *Table) Labels() []string {
	labels := make([]string, len(t.entries))
	for i, e := range t.entries {
		labels[i] = e.Label
	}
	return labels
}

// QuickSearches returns the labels offered as one-click searches.
func (t *Table) QuickSearches() []string {
	labels := t.Labels()
	if len(labels) > QuickSearchCount {
		labels = labels[:QuickSearchCount]
	}
	return labels
}

// NotFoundMessage formats the message shown when query has no match. The
// query is quoted exactly as entered.
func (t *Table) NotFoundMessage(query string) string {
	return `"` + query + `" not found. Try: ` + joinOr(t.Labels())
}

// joinOr joins items as "a, b, or c".
func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}
