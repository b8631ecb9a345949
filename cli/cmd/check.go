package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/cfgpatch/cfg"
	"github.com/ardnew/cfgpatch/log"
)

// Check validates the syntax of configuration files.
type Check struct {
	Source []string `arg:"" help:"Configuration file(s) or '-' for stdin" name:"source"`
}

// Run executes the check command. The first malformed line fails the run,
// reporting its file and 1-based line number.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	for _, name := range c.Source {
		// Each file is validated independently so identities in one file
		// never shadow another.
		set := cfg.NewSet()

		if err := loadSource(set, name); err != nil {
			return err
		}

		log.DebugContext(ctx, "source is well formed",
			slog.String("file", name),
			slog.Int("statements", set.Len()),
		)
	}

	return nil
}
