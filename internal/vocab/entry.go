// Package vocab holds the vocabulary collection the quiz draws from and the
// sources it can be loaded from (JSON file, SQL table, Google Sheet).
package vocab

import (
	"context"
	"errors"
	"strings"
)

// ErrEmpty is returned by sources that produced no usable entries.
var ErrEmpty = errors.New("vocabulary is empty")

// Entry is one word of the question bank.
type Entry struct {
	Japanese string `json:"japanese"`
	Reading  string `json:"reading"`
	Meaning  string `json:"meaning"`
}

func (e Entry) normalized() Entry {
	return Entry{
		Japanese: strings.TrimSpace(e.Japanese),
		Reading:  strings.TrimSpace(e.Reading),
		Meaning:  strings.TrimSpace(e.Meaning),
	}
}

func (e Entry) valid() bool { return e.Japanese != "" && e.Meaning != "" }

// Collection is the read-only question bank. It is built once and shared by
// all requests; nothing hands out its backing slice.
type Collection struct {
	entries []Entry
}

// NewCollection copies the usable entries (non-empty japanese and meaning,
// whitespace trimmed) into a new collection.
func NewCollection(entries []Entry) Collection {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if n := e.normalized(); n.valid() {
			out = append(out, n)
		}
	}
	return Collection{entries: out}
}

func (c Collection) Len() int { return len(c.entries) }

// At returns the i-th entry. It panics if i is out of range.
func (c Collection) At(i int) Entry { return c.entries[i] }

// Entries returns a copy of all entries.
func (c Collection) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// DistinctMeanings counts unique meanings; a quiz needs at least 4 for full
// option lists.
func (c Collection) DistinctMeanings() int {
	seen := make(map[string]struct{}, len(c.entries))
	for _, e := range c.entries {
		seen[e.Meaning] = struct{}{}
	}
	return len(seen)
}

// Source loads a collection once at startup.
type Source interface {
	Load(ctx context.Context) (Collection, error)
}
