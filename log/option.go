package log

// Option adjusts a logger configuration. The cfgpatch command line builds
// its root logger from these via [Make] after flag parsing.
type Option func(config) config

// apply folds opts over cfg, returning the configured result.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}
