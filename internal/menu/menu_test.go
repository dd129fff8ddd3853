package menu_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/marcodamonte/concepts/internal/menu"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recorder binds every topic to an action that appends the topic name to
// calls and prints a marker line.
type recorder struct {
	calls []string
}

func (r *recorder) table(t *testing.T) *menu.Table {
	t.Helper()
	actions := make(map[menu.Topic]menu.Action)
	for _, topic := range menu.Topics() {
		actions[topic] = func(w io.Writer) {
			r.calls = append(r.calls, topic.String())
			fmt.Fprintf(w, "[ran %s]\n", topic)
		}
	}
	tb, err := menu.NewTable(actions)
	require.NoError(t, err)
	return tb
}

func allTopicNames() []string {
	var out []string
	for _, t := range menu.Topics() {
		out = append(out, t.String())
	}
	return out
}

func newMenu(t *testing.T, input string) (*menu.Menu, *recorder, *bytes.Buffer) {
	t.Helper()
	rec := &recorder{}
	var out bytes.Buffer
	m := menu.New(menu.Config{
		Table: rec.table(t),
		In:    strings.NewReader(input),
		Out:   &out,
	})
	return m, rec, &out
}

// ── Scenarios ────────────────────────────────────────────────────────────────

func TestRunSingleTopicThenQuit(t *testing.T) {
	m, rec, out := newMenu(t, "7\nq\n")

	require.NoError(t, m.Run())
	if diff := cmp.Diff([]string{"collections"}, rec.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, out.String(), "[ran collections]\n\n---\n")
	assert.Contains(t, out.String(), "Bye.")
}

func TestRunInvalidThenLifetimesThenUpperQ(t *testing.T) {
	m, rec, out := newMenu(t, "x\n9\nQ\n")

	require.NoError(t, m.Run())
	if diff := cmp.Diff([]string{"lifetimes"}, rec.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, strings.Count(out.String(), "Invalid selection"))
	assert.Contains(t, out.String(), `Invalid selection "x". Enter 0-9 or q.`)
}

func TestRunAllThenQuit(t *testing.T) {
	m, rec, out := newMenu(t, "0\nq\n")

	require.NoError(t, m.Run())
	if diff := cmp.Diff(allTopicNames(), rec.calls); diff != "" {
		t.Errorf("run-all order mismatch (-want +got):\n%s", diff)
	}
	// One separator for the single dispatch cycle.
	assert.Equal(t, 1, strings.Count(out.String(), "\n---\n"))
}

func TestRunEmptyInputIsFatal(t *testing.T) {
	m, rec, _ := newMenu(t, "")

	err := m.Run()
	assert.ErrorIs(t, err, menu.ErrInputClosed)
	assert.Empty(t, rec.calls)
}

// ── Loop behavior ────────────────────────────────────────────────────────────

func TestRunEOFAfterSelectionsIsFatal(t *testing.T) {
	m, rec, _ := newMenu(t, "1\n2\n")

	err := m.Run()
	assert.ErrorIs(t, err, menu.ErrInputClosed)
	assert.Equal(t, []string{"basics", "ownership"}, rec.calls)
}

func TestRunLastLineWithoutNewline(t *testing.T) {
	m, rec, _ := newMenu(t, "3\nq")

	require.NoError(t, m.Run())
	assert.Equal(t, []string{"structs"}, rec.calls)
}

func TestRunTrimsWhitespaceAndCRLF(t *testing.T) {
	m, rec, _ := newMenu(t, "  5 \r\n\tq\r\n")

	require.NoError(t, m.Run())
	assert.Equal(t, []string{"errors"}, rec.calls)
}

func TestRunReadErrorIsFatal(t *testing.T) {
	rec := &recorder{}
	boom := errors.New("disk on fire")
	m := menu.New(menu.Config{
		Table: rec.table(t),
		In:    iotest.ErrReader(boom),
		Out:   io.Discard,
	})

	err := m.Run()
	assert.ErrorIs(t, err, menu.ErrInputClosed)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Empty(t, rec.calls)
}

func TestRunInvalidDoesNotPrintSeparator(t *testing.T) {
	m, rec, out := newMenu(t, "hello\n42\n\nq\n")

	require.NoError(t, m.Run())
	assert.Empty(t, rec.calls)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid selection"))
	assert.NotContains(t, out.String(), "---")
}

func TestRunPrintsOptionList(t *testing.T) {
	m, _, out := newMenu(t, "q\n")

	require.NoError(t, m.Run())
	s := out.String()
	assert.Contains(t, s, "Go concepts")
	for _, topic := range menu.Topics() {
		assert.Contains(t, s, fmt.Sprintf("  %s. %s\n", topic.Token(), topic.Label()))
	}
	assert.Contains(t, s, "  0. Run everything\n")
	assert.Contains(t, s, "  q. Quit\n")
	assert.Contains(t, s, "Select (0-9, q): ")
}

func TestRunHideBanner(t *testing.T) {
	rec := &recorder{}
	var out bytes.Buffer
	m := menu.New(menu.Config{
		Table:      rec.table(t),
		In:         strings.NewReader("q\n"),
		Out:        &out,
		HideBanner: true,
	})

	require.NoError(t, m.Run())
	assert.NotContains(t, out.String(), "sample collection")
	assert.Contains(t, out.String(), "Choose a topic:")
}

// ── Dispatch ─────────────────────────────────────────────────────────────────

func TestDispatchEveryTopicToken(t *testing.T) {
	for _, topic := range menu.Topics() {
		t.Run(topic.String(), func(t *testing.T) {
			m, rec, _ := newMenu(t, "")
			assert.Equal(t, menu.OutcomeTopic, m.Dispatch(topic.Token()))
			assert.Equal(t, []string{topic.String()}, rec.calls)
		})
	}
}

func TestDispatchExitTokens(t *testing.T) {
	for _, tok := range []string{"q", "Q", "quit", "QUIT", "Exit", " q "} {
		m, rec, out := newMenu(t, "")
		assert.Equal(t, menu.OutcomeExit, m.Dispatch(tok), "token %q", tok)
		assert.Empty(t, rec.calls)
		assert.Empty(t, out.String())
	}
}

func TestDispatchInvalidIsNoOp(t *testing.T) {
	for _, tok := range []string{"", "x", "10", "00", "-1", "qq", "collections"} {
		m, rec, out := newMenu(t, "")

		assert.Equal(t, menu.OutcomeInvalid, m.Dispatch(tok), "token %q", tok)
		assert.Empty(t, rec.calls)
		assert.Equal(t, 1, strings.Count(out.String(), "\n"), "one diagnostic line for %q", tok)

		// Same token twice: same result, still nothing run.
		assert.Equal(t, menu.OutcomeInvalid, m.Dispatch(tok))
		assert.Empty(t, rec.calls)
	}
}

func TestDispatchAll(t *testing.T) {
	m, rec, _ := newMenu(t, "")

	assert.Equal(t, menu.OutcomeAll, m.Dispatch(menu.RunAllToken))
	if diff := cmp.Diff(allTopicNames(), rec.calls); diff != "" {
		t.Errorf("run-all order mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPanicsWithoutTable(t *testing.T) {
	assert.Panics(t, func() { menu.New(menu.Config{}) })
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "topic", menu.OutcomeTopic.String())
	assert.Equal(t, "all", menu.OutcomeAll.String())
	assert.Equal(t, "exit", menu.OutcomeExit.String())
	assert.Equal(t, "invalid", menu.OutcomeInvalid.String())
}
