package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcodamonte/concepts/internal/config"
	"github.com/marcodamonte/concepts/internal/logging"
	"github.com/marcodamonte/concepts/internal/menu"
)

// execute runs the command tree with args and stdin, returning everything
// written to stdout and stderr. Flags are reset first because the commands
// are package-level.
func execute(t *testing.T, stdin string, args ...string) (string, logging.Options, error) {
	t.Helper()

	resetFlags(rootCmd)
	var got logging.Options
	saved := newLogger
	newLogger = func(opts logging.Options) (*zap.Logger, error) {
		got = opts
		return zap.NewNop(), nil
	}
	t.Cleanup(func() { newLogger = saved })

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), got, err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "concepts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestInteractiveSelectThenQuit(t *testing.T) {
	out, _, err := execute(t, "1\nq\n", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Go concepts — sample collection")
	assert.Contains(t, out, "Choose a topic:")
	assert.Contains(t, out, "▶ "+menu.Basics.Label())
	assert.Contains(t, out, "\n---\n")
	assert.True(t, strings.HasSuffix(out, "Bye. Happy gophering!\n"), out)
}

func TestInteractiveInvalidThenQuit(t *testing.T) {
	out, _, err := execute(t, "42\nQUIT\n", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, `Invalid selection "42". Enter 0-9 or q.`)
	assert.NotContains(t, out, "▶ ")
}

func TestInteractiveEndOfInputFails(t *testing.T) {
	out, _, err := execute(t, "", "--no-color")
	require.Error(t, err)
	assert.ErrorIs(t, err, menu.ErrInputClosed)
	assert.Contains(t, out, "Select (0-9, q): ")
}

func TestRunByNameAndToken(t *testing.T) {
	out, _, err := execute(t, "", "--no-color", "run", "collections", "9")
	require.NoError(t, err)

	c := strings.Index(out, "▶ "+menu.Collections.Label())
	l := strings.Index(out, "▶ "+menu.Lifetimes.Label())
	require.True(t, c >= 0 && l >= 0, out)
	assert.Less(t, c, l)
	assert.Equal(t, 1, strings.Count(out, "\n---\n"))
}

func TestRunAll(t *testing.T) {
	out, _, err := execute(t, "", "--no-color", "run", "all")
	require.NoError(t, err)

	last := -1
	for _, topic := range menu.Topics() {
		i := strings.Index(out, "▶ "+topic.Label())
		require.Greater(t, i, last, topic.String())
		last = i
	}
	assert.NotContains(t, out, "✗ ")
}

func TestRunRejectsUnknownBeforeRunning(t *testing.T) {
	out, _, err := execute(t, "", "--no-color", "run", "1", "bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, menu.ErrUnknownTopic)
	assert.NotContains(t, out, "▶ ")
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "", "--no-color", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "7  collections  ")
	assert.Contains(t, out, "0  all          Run everything")
	assert.NotContains(t, out, "     - ")

	out, _, err = execute(t, "", "--no-color", "list", "--demos")
	require.NoError(t, err)
	assert.Contains(t, out, "     - Custom iterator — Counter")
}

func TestExplain(t *testing.T) {
	out, _, err := execute(t, "", "--no-color", "explain", "lifetimes")
	require.NoError(t, err)
	assert.Contains(t, out, "Escape analysis")

	_, _, err = execute(t, "", "--no-color", "explain", "nope")
	assert.ErrorIs(t, err, menu.ErrUnknownTopic)
}

func TestConfigFileAndFlagOverrides(t *testing.T) {
	path := writeConfig(t, "banner: false\nverbose: true\nlog_file: concepts.log\n")

	out, opts, err := execute(t, "q\n", "--config", path, "--no-color")
	require.NoError(t, err)
	assert.NotContains(t, out, "Go concepts — sample collection")
	assert.Equal(t, logging.Options{Verbose: true, File: "concepts.log"}, opts)

	_, opts, err = execute(t, "q\n", "--config", path, "--no-color", "--verbose=false")
	require.NoError(t, err)
	assert.False(t, opts.Verbose)
	assert.False(t, cfg.Color)
}

func TestInvalidConfig(t *testing.T) {
	path := writeConfig(t, "notes_width: -1\n")
	_, _, err := execute(t, "q\n", "--config", path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
