package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/cfgpatch/cfg"
	"github.com/ardnew/cfgpatch/log"
)

// List prints the merged statements of the given sources in total order.
type List struct {
	Filter string `help:"Print only statements matching this expression" placeholder:"EXPR"`
	Kind   string `help:"Print only statements of this kind"             enum:",command,bind,setting" default:""`

	Source []string `arg:"" optional:"" help:"Configuration file(s) or '-' for stdin" name:"source"`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var filter *cfg.Filter

	if l.Filter != "" {
		filter, err = cfg.CompileFilter(l.Filter)
		if err != nil {
			return err
		}
	}

	set, err := loadSources(l.Source, cfg.WithLogger(log.Default()))
	if err != nil {
		return err
	}

	kind, restrict := cfg.ParseKind(l.Kind)

	count := 0

	for _, st := range set.Statements() {
		if restrict && st.Kind != kind {
			continue
		}

		if filter != nil {
			ok, err := filter.Match(st)
			if err != nil {
				return err
			}

			if !ok {
				continue
			}
		}

		fmt.Println(st.String())

		count++
	}

	log.DebugContext(ctx, "listed statements",
		slog.Int("printed", count),
		slog.Int("total", set.Len()),
	)

	return nil
}
