package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/cfgpatch/cfg"
	"github.com/ardnew/cfgpatch/pkg"
)

// Fmt parses a configuration file and emits it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as canonical configuration syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
}

// Native canonicalizes a configuration file: statements are emitted in total
// order (commands, binds, settings; each sorted by key), duplicates
// collapsed, comments and blank lines dropped.
type Native struct {
	Write bool `help:"Rewrite the source file in place instead of printing" short:"w"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the fmt command.
func (f *Native) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	set := cfg.NewSet()

	if err := loadSource(set, f.Source); err != nil {
		return err
	}

	if !f.Write || f.Source == stdinSource {
		_, err := set.WriteTo(os.Stdout)

		return err
	}

	file, err := os.Create(f.Source)
	if err != nil {
		return ErrWriteTarget.
			With(slog.String("file", f.Source)).
			Wrap(pkg.ErrWriteOutput.Wrap(err))
	}
	defer file.Close()

	_, err = set.WriteTo(file)

	return err
}

// JSON renders a configuration file as a JSON array of statements.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	set := cfg.NewSet()

	if err := loadSource(set, j.Source); err != nil {
		return err
	}

	return set.FormatJSON(os.Stdout, j.Indent)
}

// YAML renders a configuration file as a YAML sequence of statements.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	set := cfg.NewSet()

	if err := loadSource(set, y.Source); err != nil {
		return err
	}

	return set.FormatYAML(ctx, os.Stdout, y.Indent)
}
