package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/cfgpatch/cfg"
	"github.com/ardnew/cfgpatch/pkg"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSource opens the named source for reading. The name "-" selects
// stdin, which the returned closer leaves open.
func openSource(name string) (io.ReadCloser, error) {
	if name == stdinSource {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, ErrReadSource.
			With(slog.String("file", name)).
			Wrap(pkg.ErrReadInput.Wrap(err))
	}

	return file, nil
}

// loadSource parses one named source into set. A malformed line is reported
// with the source name and its 1-based line number.
func loadSource(set *cfg.Set, name string) error {
	file, err := openSource(name)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := set.Load(file); err != nil {
		return wrapLineError(name, err)
	}

	return nil
}

// loadSources parses the named sources in order into a single collection,
// so later sources override earlier ones. No sources means stdin.
func loadSources(names []string, opts ...cfg.Option) (*cfg.Set, error) {
	if len(names) == 0 {
		names = []string{stdinSource}
	}

	set := cfg.NewSet(opts...)

	for _, name := range names {
		if err := loadSource(set, name); err != nil {
			return nil, err
		}
	}

	return set, nil
}

// wrapLineError decorates a load failure with its source name. Line indexes
// carried by [cfg.LineError] are zero-based; the attribute reports the
// 1-based number users expect.
func wrapLineError(name string, err error) error {
	wrapped := ErrParseSource.With(slog.String("file", name))

	var lineErr *cfg.LineError
	if errors.As(err, &lineErr) {
		wrapped = wrapped.With(slog.Int("line", lineErr.Index+1))
	}

	return wrapped.Wrap(err)
}
