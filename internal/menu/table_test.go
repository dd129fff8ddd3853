package menu

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullActions(log *[]Topic) map[Topic]Action {
	actions := make(map[Topic]Action)
	for _, t := range Topics() {
		actions[t] = func(w io.Writer) {
			*log = append(*log, t)
			fmt.Fprintln(w, t)
		}
	}
	return actions
}

func TestTopicsOrderAndTokens(t *testing.T) {
	topics := Topics()
	require.Len(t, topics, 9)

	want := []string{"basics", "ownership", "structs", "patterns", "errors",
		"generics", "collections", "closures", "lifetimes"}
	for i, topic := range topics {
		assert.Equal(t, fmt.Sprint(i+1), topic.Token())
		assert.Equal(t, want[i], topic.String())
		assert.NotEmpty(t, topic.Label())
	}
}

func TestParseTopic(t *testing.T) {
	cases := []struct {
		input string
		want  Topic
		ok    bool
	}{
		{"7", Collections, true},
		{"collections", Collections, true},
		{" Lifetimes ", Lifetimes, true},
		{"9", Lifetimes, true},
		{"0", 0, false},
		{"10", 0, false},
		{"traits", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseTopic(c.input)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseTopic(%q) = %v, %v; want %v, %v", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestTopicStringOutOfRange(t *testing.T) {
	assert.Equal(t, "Topic(42)", Topic(42).String())
	assert.False(t, Topic(0).Valid())
	assert.False(t, topicEnd.Valid())
}

func TestNewTableRequiresEveryTopic(t *testing.T) {
	var log []Topic
	actions := fullActions(&log)
	delete(actions, Generics)

	_, err := NewTable(actions)
	assert.ErrorIs(t, err, ErrIncompleteTable)
	assert.Contains(t, err.Error(), "generics")
}

func TestNewTableRejectsNilAction(t *testing.T) {
	var log []Topic
	actions := fullActions(&log)
	actions[Basics] = nil

	_, err := NewTable(actions)
	assert.ErrorIs(t, err, ErrIncompleteTable)
}

func TestNewTableRejectsUnknownTopic(t *testing.T) {
	var log []Topic
	actions := fullActions(&log)
	actions[Topic(11)] = func(io.Writer) {}

	_, err := NewTable(actions)
	assert.ErrorIs(t, err, ErrUnknownTopic)
}

func TestTableLookupAndRunAll(t *testing.T) {
	var log []Topic
	tb, err := NewTable(fullActions(&log))
	require.NoError(t, err)
	assert.Equal(t, 9, tb.Len())

	e, ok := tb.Lookup("4")
	require.True(t, ok)
	assert.Equal(t, PatternMatching, e.Topic)
	assert.Equal(t, "4", e.Token())

	_, ok = tb.Lookup("0")
	assert.False(t, ok, "run-all is not a table entry")

	var buf bytes.Buffer
	tb.RunAll(&buf)
	assert.Equal(t, Topics(), log)
}

func TestTableEntriesIsACopy(t *testing.T) {
	var log []Topic
	tb, err := NewTable(fullActions(&log))
	require.NoError(t, err)

	entries := tb.Entries()
	entries[0] = Entry{}

	e, ok := tb.Lookup("1")
	require.True(t, ok)
	assert.Equal(t, Basics, e.Topic)
	assert.Equal(t, Basics, tb.Entries()[0].Topic)
}
