package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/cfgpatch/cfg"
	"github.com/ardnew/cfgpatch/log"
)

// maxSuggestions bounds the number of fuzzy-matched keys offered when a
// requested key is not found.
const maxSuggestions = 5

// Get prints the statements matching a key from the merged sources.
type Get struct {
	Kind string `help:"Restrict the lookup to one statement kind" enum:",command,bind,setting" default:""`

	Key    string   `arg:"" help:"Configuration key to look up" name:"key"`
	Source []string `arg:"" optional:"" help:"Configuration file(s) or '-' for stdin" name:"source"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	set, err := loadSources(g.Source, cfg.WithLogger(log.Default()))
	if err != nil {
		return err
	}

	match := g.lookup(set)
	if len(match) == 0 {
		err := ErrKeyNotFound.With(slog.String("key", g.Key))

		if suggest := set.Suggest(g.Key, maxSuggestions); len(suggest) > 0 {
			err = err.With(
				slog.String("did_you_mean", strings.Join(suggest, ", ")),
			)
		}

		return err
	}

	log.DebugContext(ctx, "key found",
		slog.String("key", g.Key),
		slog.Int("matches", len(match)),
	)

	for _, st := range match {
		fmt.Println(st.Val)
	}

	return nil
}

// lookup returns the matching statements, restricted by kind when requested.
func (g *Get) lookup(set *cfg.Set) []cfg.Statement {
	if g.Kind == "" {
		return set.Lookup(g.Key)
	}

	kind, ok := cfg.ParseKind(g.Kind)
	if !ok {
		return nil
	}

	st, ok := set.Get(kind, g.Key)
	if !ok {
		return nil
	}

	return []cfg.Statement{st}
}
