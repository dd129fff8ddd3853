package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/concepts/internal/menu"
	"github.com/marcodamonte/concepts/internal/topics"
	"github.com/marcodamonte/concepts/internal/ui"
)

// resolveToken maps a command-line topic argument to its menu token.
func resolveToken(arg string) (string, error) {
	a := strings.TrimSpace(arg)
	if a == menu.RunAllToken || strings.EqualFold(a, "all") {
		return menu.RunAllToken, nil
	}
	t, ok := menu.ParseTopic(a)
	if !ok {
		return "", fmt.Errorf("%w: %q", menu.ErrUnknownTopic, arg)
	}
	return t.Token(), nil
}

func runTopics(cmd *cobra.Command, args []string) error {
	tokens := make([]string, 0, len(args))
	for _, arg := range args {
		tok, err := resolveToken(arg)
		if err != nil {
			return err
		}
		tokens = append(tokens, tok)
	}

	tb, err := topics.Table(logger)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	m := menu.New(menu.Config{Table: tb, Out: out, Theme: &theme, Logger: logger})

	for i, tok := range tokens {
		if i > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, theme.Separator.Render("---"))
			fmt.Fprintln(out)
		}
		outcome := m.Dispatch(tok)
		logger.Debug("run", zap.String("token", tok), zap.Stringer("outcome", outcome))
	}
	return nil
}

func listTopics(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, t := range menu.Topics() {
		fmt.Fprintf(out, "%s  %-12s %s\n",
			theme.Token.Render(t.Token()), t.String(), theme.Option.Render(t.Label()))
		if !showDemos {
			continue
		}
		demos, err := topics.Demos(t)
		if err != nil {
			return err
		}
		for _, d := range demos {
			fmt.Fprintf(out, "     - %s\n", d.Title)
		}
	}
	fmt.Fprintf(out, "%s  %-12s %s\n", theme.Token.Render(menu.RunAllToken), "all", theme.Option.Render("Run everything"))
	return nil
}

func explainTopic(cmd *cobra.Command, args []string) error {
	t, ok := menu.ParseTopic(args[0])
	if !ok {
		return fmt.Errorf("%w: %q", menu.ErrUnknownTopic, args[0])
	}
	md, err := topics.Notes(t)
	if err != nil {
		return err
	}
	return writeNotes(cmd.OutOrStdout(), md)
}

// writeNotes renders md with the configured style; without color it always
// uses the escape-free style.
func writeNotes(w io.Writer, md string) error {
	style := cfg.NotesStyle
	if !cfg.Color {
		style = "notty"
	}
	rendered, err := ui.RenderNotes(md, style, cfg.NotesWidth)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, rendered)
	return err
}
