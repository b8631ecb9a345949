//go:build pprof

package profile

// Option adjusts the profiling control built from cfgpatch's command-line
// flags.
type Option func(control) control

// apply folds opts over c, returning the configured control.
func apply(c control, opts ...Option) control {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// newControl returns a control configured with the provided options.
func newControl(opts ...Option) control {
	var c control

	return apply(c, opts...)
}
