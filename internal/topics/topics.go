// Package topics binds every menu topic to its demonstrations and notes.
package topics

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"go.uber.org/zap"

	"github.com/marcodamonte/concepts/internal/demo"
	"github.com/marcodamonte/concepts/internal/menu"
	"github.com/marcodamonte/concepts/internal/topics/basics"
	"github.com/marcodamonte/concepts/internal/topics/closures"
	"github.com/marcodamonte/concepts/internal/topics/collections"
	"github.com/marcodamonte/concepts/internal/topics/errhandling"
	"github.com/marcodamonte/concepts/internal/topics/generics"
	"github.com/marcodamonte/concepts/internal/topics/lifetimes"
	"github.com/marcodamonte/concepts/internal/topics/ownership"
	"github.com/marcodamonte/concepts/internal/topics/patterns"
	"github.com/marcodamonte/concepts/internal/topics/structs"
)

//go:embed notes/*.md
var notesFS embed.FS

var registry = map[menu.Topic]func() []demo.Demo{
	menu.Basics:          basics.Demos,
	menu.Ownership:       ownership.Demos,
	menu.StructsEnums:    structs.Demos,
	menu.PatternMatching: patterns.Demos,
	menu.ErrorHandling:   errhandling.Demos,
	menu.Generics:        generics.Demos,
	menu.Collections:     collections.Demos,
	menu.Closures:        closures.Demos,
	menu.Lifetimes:       lifetimes.Demos,
}

// Demos returns the sections of t in display order.
func Demos(t menu.Topic) ([]demo.Demo, error) {
	f, ok := registry[t]
	if !ok {
		return nil, fmt.Errorf("%w: %v", menu.ErrUnknownTopic, t)
	}
	return f(), nil
}

// Action runs every section of t under the topic's heading. Panicking
// sections are reported in the output and logged at warn level.
func Action(t menu.Topic, logger *zap.Logger) menu.Action {
	if logger == nil {
		logger = zap.NewNop()
	}
	build := registry[t]
	return func(w io.Writer) {
		if build == nil {
			fmt.Fprintf(w, "no demonstrations for %v\n", t)
			return
		}
		if n := demo.Run(w, t.Label(), build()); n > 0 {
			logger.Warn("demonstrations panicked",
				zap.Stringer("topic", t),
				zap.Int("count", n))
		}
	}
}

// Table builds the dispatch table for every registered topic.
func Table(logger *zap.Logger) (*menu.Table, error) {
	actions := make(map[menu.Topic]menu.Action, len(registry))
	for t := range registry {
		actions[t] = Action(t, logger)
	}
	return menu.NewTable(actions)
}

// Notes returns the markdown notes for t.
func Notes(t menu.Topic) (string, error) {
	if !t.Valid() {
		return "", fmt.Errorf("%w: %v", menu.ErrUnknownTopic, t)
	}
	b, err := fs.ReadFile(notesFS, "notes/"+t.String()+".md")
	if err != nil {
		return "", fmt.Errorf("notes for %v: %w", t, err)
	}
	return string(b), nil
}
