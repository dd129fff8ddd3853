// Package menu implements the interactive dispatcher: it prints the list of
// topics, reads one selection per line and runs the bound demonstration,
// until an exit token is read.
//
// Lifecycle:
//
//	tb, _ := menu.NewTable(actions)
//	m := menu.New(menu.Config{Table: tb, In: os.Stdin, Out: os.Stdout})
//	err := m.Run() // nil on exit token, ErrInputClosed on a dead stream
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/marcodamonte/concepts/internal/ui"
)

// RunAllToken dispatches every entry of the table in order.
const RunAllToken = "0"

// ErrInputClosed is returned by Run when no further selection can be read.
var ErrInputClosed = errors.New("menu: input closed")

var exitTokens = map[string]bool{
	"q":    true,
	"quit": true,
	"exit": true,
}

// IsExitToken reports whether token ends the loop. Comparison ignores case.
func IsExitToken(token string) bool {
	return exitTokens[strings.ToLower(token)]
}

// Outcome classifies one dispatch cycle.
type Outcome int

const (
	OutcomeInvalid Outcome = iota
	OutcomeTopic
	OutcomeAll
	OutcomeExit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTopic:
		return "topic"
	case OutcomeAll:
		return "all"
	case OutcomeExit:
		return "exit"
	default:
		return "invalid"
	}
}

// Config holds menu construction parameters.
type Config struct {
	// Table is required.
	Table *Table

	// In supplies one selection per line. Defaults to os.Stdin.
	In io.Reader

	// Out receives the menu and every action's output. Defaults to os.Stdout.
	Out io.Writer

	// Theme styles the banner, prompt and separators. Defaults to ui.Plain().
	Theme *ui.Theme

	// HideBanner skips the title box; the option list is always printed.
	HideBanner bool

	// Logger records dispatches at debug level. Defaults to zap.NewNop().
	Logger *zap.Logger
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.In == nil {
		out.In = os.Stdin
	}
	if out.Out == nil {
		out.Out = os.Stdout
	}
	if out.Theme == nil {
		th := ui.Plain()
		out.Theme = &th
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	return out
}

// Menu is the read-line-and-dispatch loop. It is strictly sequential and
// must not be shared between goroutines.
type Menu struct {
	cfg Config
	in  *bufio.Reader
}

// New creates a Menu. It panics if cfg.Table is nil.
func New(cfg Config) *Menu {
	if cfg.Table == nil {
		panic("menu: nil table")
	}
	cfg = cfg.withDefaults()
	return &Menu{cfg: cfg, in: bufio.NewReader(cfg.In)}
}

// Run prints the menu and loops until an exit token is read. It returns nil
// after an exit token and an error wrapping ErrInputClosed when the input
// stream ends or fails first.
func (m *Menu) Run() error {
	m.printHeader()

	for {
		fmt.Fprint(m.cfg.Out, m.cfg.Theme.Prompt.Render(m.prompt()))

		line, err := m.readLine()
		if err != nil {
			// End the prompt line so the caller's message starts clean.
			fmt.Fprintln(m.cfg.Out)
			m.cfg.Logger.Error("read selection", zap.Error(err))
			return err
		}

		switch m.Dispatch(line) {
		case OutcomeExit:
			fmt.Fprintln(m.cfg.Out, "Bye. Happy gophering!")
			return nil
		case OutcomeInvalid:
			continue
		}

		fmt.Fprintln(m.cfg.Out)
		fmt.Fprintln(m.cfg.Out, m.cfg.Theme.Separator.Render("---"))
		fmt.Fprintln(m.cfg.Out)
	}
}

// Dispatch runs the action(s) selected by token and reports what happened.
// Surrounding whitespace is ignored. An unrecognized token writes one
// diagnostic line and has no other effect.
func (m *Menu) Dispatch(token string) Outcome {
	token = strings.TrimSpace(token)
	log := m.cfg.Logger.With(zap.String("token", token))

	switch {
	case IsExitToken(token):
		log.Debug("exit")
		return OutcomeExit

	case token == RunAllToken:
		log.Debug("dispatch all", zap.Int("actions", m.cfg.Table.Len()))
		m.cfg.Table.RunAll(m.cfg.Out)
		return OutcomeAll
	}

	e, ok := m.cfg.Table.Lookup(token)
	if !ok {
		log.Debug("invalid selection")
		fmt.Fprintln(m.cfg.Out, m.cfg.Theme.Error.Render(
			fmt.Sprintf("Invalid selection %q. Enter %s or q.", token, m.tokenRange())))
		return OutcomeInvalid
	}

	log.Debug("dispatch", zap.Stringer("topic", e.Topic))
	e.Action(m.cfg.Out)
	return OutcomeTopic
}

// readLine returns the next line without its terminator. A final line with
// no newline is returned before the end of the stream is reported.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) printHeader() {
	out := m.cfg.Out
	th := m.cfg.Theme

	if !m.cfg.HideBanner {
		fmt.Fprintln(out, th.Banner.Render("Go concepts — sample collection"))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, "Choose a topic:")
	fmt.Fprintln(out)
	for _, e := range m.cfg.Table.Entries() {
		m.printOption(e.Token(), e.Label())
	}
	m.printOption(RunAllToken, "Run everything")
	m.printOption("q", "Quit")
	fmt.Fprintln(out)
}

func (m *Menu) printOption(token, label string) {
	th := m.cfg.Theme
	fmt.Fprintf(m.cfg.Out, "  %s. %s\n", th.Token.Render(token), th.Option.Render(label))
}

func (m *Menu) prompt() string {
	return fmt.Sprintf("Select (%s, q): ", m.tokenRange())
}

func (m *Menu) tokenRange() string {
	entries := m.cfg.Table.Entries()
	if len(entries) == 0 {
		return RunAllToken
	}
	return fmt.Sprintf("%s-%s", RunAllToken, entries[len(entries)-1].Token())
}
