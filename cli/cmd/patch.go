package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/cfgpatch/cfg"
	"github.com/ardnew/cfgpatch/log"
	"github.com/ardnew/cfgpatch/pkg"
)

// Patch merges a patch file into a target configuration file.
//
// Both inputs are fully parsed and merged before anything is written, so a
// malformed line in either file leaves the target untouched.
type Patch struct {
	Output string `help:"Write result to this file instead of the target ('-' for stdout)" short:"o"`
	DryRun bool   `help:"Print the merged result without writing anything"                 name:"dry-run"`
	Filter string `help:"Apply only patch statements matching this expression"             placeholder:"EXPR"`

	Target string `arg:"" help:"Target configuration file ('-' for stdin)" name:"target"`
	Patch  string `arg:"" help:"Patch configuration file ('-' for stdin)"  name:"patch"`
}

// Run executes the patch command.
func (p *Patch) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var filter *cfg.Filter

	if p.Filter != "" {
		filter, err = cfg.CompileFilter(p.Filter)
		if err != nil {
			return err
		}
	}

	set := cfg.NewSet(cfg.WithLogger(log.Default()))

	if err := loadSource(set, p.Target); err != nil {
		return err
	}

	patch, err := openSource(p.Patch)
	if err != nil {
		return err
	}
	defer patch.Close()

	if err := set.LoadFiltered(patch, filter); err != nil {
		return wrapLineError(p.Patch, err)
	}

	log.DebugContext(ctx, "merge complete",
		slog.String("target", p.Target),
		slog.String("patch", p.Patch),
		slog.Int("statements", set.Len()),
	)

	return p.write(ctx, set)
}

// write emits the merged collection to the configured destination. The
// target file is truncated only here, after the merge has succeeded.
func (p *Patch) write(ctx context.Context, set *cfg.Set) error {
	dest := p.Output
	if dest == "" {
		dest = p.Target
	}

	if p.DryRun || dest == stdinSource {
		_, err := set.WriteTo(os.Stdout)

		return err
	}

	file, err := os.Create(dest)
	if err != nil {
		return ErrWriteTarget.
			With(slog.String("file", dest)).
			Wrap(pkg.ErrWriteOutput.Wrap(err))
	}
	defer file.Close()

	n, err := set.WriteTo(file)
	if err != nil {
		return ErrWriteTarget.
			With(slog.String("file", dest)).
			Wrap(pkg.ErrWriteOutput.Wrap(err))
	}

	log.DebugContext(ctx, "wrote merged configuration",
		slog.String("file", dest),
		slog.Int64("bytes", n),
	)

	return nil
}
