package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/ardnew/cfgpatch/cfg"
	"github.com/ardnew/cfgpatch/log"
	"github.com/ardnew/cfgpatch/profile"
)

// Init generates a default configuration file with current flag values.
// The file is written in the same line grammar the tool patches, one
// setting per flag, with hyphens replaced by underscores.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	// Check if file exists and force not set
	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}
	defer file.Close()

	set := i.buildSet(ctx)

	if _, err := set.WriteTo(file); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// buildSet collects the current flag values as settings.
func (i *Init) buildSet(ctx context.Context) *cfg.Set {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ktx := kongContextFrom(ctx)
	set := cfg.NewSet()

	prefixIgnore := []string{"help", "force", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		val := ktx.FlagValue(flag)
		if val == nil {
			continue
		}

		text := flagText(val)
		if text == "" {
			continue
		}

		key := strings.ReplaceAll(flag.Name, "-", "_")
		set.Insert(cfg.Setting(key, text))
	}

	return set
}

// flagText renders a flag value as a setting payload, or empty to omit it.
func flagText(val any) string {
	switch v := val.(type) {
	case string:
		return v

	case bool:
		return fmt.Sprintf("%t", v)

	case []string:
		return strings.Join(v, ",")

	default:
		return fmt.Sprint(v)
	}
}
