package menu

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrIncompleteTable means a topic has no action bound to it.
	ErrIncompleteTable = errors.New("menu: topic without action")
	// ErrUnknownTopic means an action was bound to a value outside the closed set.
	ErrUnknownTopic = errors.New("menu: unknown topic")
)

// Action runs one demonstration. Its outcome does not affect the dispatcher.
type Action func(w io.Writer)

// Entry binds a topic to its action.
type Entry struct {
	Topic  Topic
	Action Action
}

// Token is the selection that dispatches e.
func (e Entry) Token() string { return e.Topic.Token() }

// Label is the menu text for e.
func (e Entry) Label() string { return e.Topic.Label() }

// Table is the ordered token→action mapping shared by single dispatch and
// "run all". It is immutable once built.
type Table struct {
	entries []Entry
	byToken map[string]int
}

// NewTable builds a Table from one action per topic. Every topic must be
// bound; entries are ordered by topic.
func NewTable(actions map[Topic]Action) (*Table, error) {
	for t := range actions {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownTopic, int(t))
		}
	}

	topics := Topics()
	tb := &Table{
		entries: make([]Entry, 0, len(topics)),
		byToken: make(map[string]int, len(topics)),
	}
	for _, t := range topics {
		a := actions[t]
		if a == nil {
			return nil, fmt.Errorf("%w: %s", ErrIncompleteTable, t)
		}
		tb.byToken[t.Token()] = len(tb.entries)
		tb.entries = append(tb.entries, Entry{Topic: t, Action: a})
	}
	return tb, nil
}

// Lookup returns the entry for token.
func (tb *Table) Lookup(token string) (Entry, bool) {
	i, ok := tb.byToken[token]
	if !ok {
		return Entry{}, false
	}
	return tb.entries[i], true
}

// Entries returns a copy of the entries in registered order.
func (tb *Table) Entries() []Entry {
	out := make([]Entry, len(tb.entries))
	copy(out, tb.entries)
	return out
}

// Len returns the number of entries.
func (tb *Table) Len() int { return len(tb.entries) }

// RunAll invokes every action once, in registered order.
func (tb *Table) RunAll(w io.Writer) {
	for _, e := range tb.entries {
		e.Action(w)
	}
}
