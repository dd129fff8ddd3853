package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/concepts/internal/config"
	"github.com/marcodamonte/concepts/internal/logging"
	"github.com/marcodamonte/concepts/internal/menu"
	"github.com/marcodamonte/concepts/internal/topics"
	"github.com/marcodamonte/concepts/internal/ui"
)

var (
	// Global flags
	configPath string
	verbose    bool
	noColor    bool

	// list flags
	showDemos bool

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger *zap.Logger
	theme  ui.Theme

	// newLogger is swapped out by tests.
	newLogger = logging.New
)

// rootCmd runs the interactive menu.
var rootCmd = &cobra.Command{
	Use:   "concepts",
	Short: "Go concepts - an interactive sample collection",
	Long: `concepts walks through Go's core ideas one topic at a time.

Run without arguments to pick topics from an interactive menu:
  1-9  run one topic
  0    run every topic in order
  q    quit`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

// runCmd dispatches topics without prompting.
var runCmd = &cobra.Command{
	Use:   "run <topic>...",
	Short: "Run one or more topics by token or name",
	Long: `Runs each topic through the same dispatch table as the menu.

Topics are given by token ("7"), by name ("collections"), or "0"/"all"
for every topic. All arguments are checked before anything runs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTopics,
}

// listCmd prints the topic table.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List topics and their tokens",
	Args:  cobra.NoArgs,
	RunE:  listTopics,
}

// explainCmd renders a topic's notes.
var explainCmd = &cobra.Command{
	Use:   "explain <topic>",
	Short: "Show the reference notes for a topic",
	Args:  cobra.ExactArgs(1),
	RunE:  explainTopic,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colors and styled output")

	listCmd.Flags().BoolVar(&showDemos, "demos", false, "Also list the sections of each topic")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(explainCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config, applies explicitly set flags on top, and builds
// the logger and theme shared by every command.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		loaded.Verbose = verbose
	}
	if cmd.Flags().Changed("no-color") {
		loaded.Color = !noColor
	}
	cfg = loaded

	logger, err = newLogger(logging.Options{Verbose: cfg.Verbose, File: cfg.LogFile})
	if err != nil {
		return err
	}
	theme = ui.NewTheme(cfg.Color)

	logger.Debug("configured",
		zap.String("command", cmd.Name()),
		zap.String("config", configPath),
		zap.Bool("color", cfg.Color),
		zap.Bool("verbose", cfg.Verbose))
	return nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	tb, err := topics.Table(logger)
	if err != nil {
		return err
	}

	m := menu.New(menu.Config{
		Table:      tb,
		In:         cmd.InOrStdin(),
		Out:        cmd.OutOrStdout(),
		Theme:      &theme,
		HideBanner: !cfg.Banner,
		Logger:     logger,
	})
	if err := m.Run(); err != nil {
		if errors.Is(err, menu.ErrInputClosed) {
			return fmt.Errorf("no selection to read: %w", err)
		}
		return err
	}
	return nil
}
