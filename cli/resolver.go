package cli

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/cfgpatch/cfg"
)

// resolve is a [kong.ConfigurationLoader] that parses config files written in
// the same line grammar the tool patches.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config")
//
// The grammar maps onto Kong flags as follows:
//   - Each setting line `name "value"` sets the flag of that name
//   - Each bare command line `name` sets the boolean flag of that name
//   - Flag names with hyphens (e.g., "log-level") use underscores in the
//     config file (e.g., "log_level"), since hyphens are not identifier
//     characters
//
// Example config file:
//
//	log_level "debug"
//	log_format "json"
//	log_pretty "true"
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=json
//	--log-pretty=true
//
// Command-line flags override config file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	set := cfg.NewSet()

	if err := set.Load(r); err != nil {
		// Malformed config file - return empty config
		return config{}, nil
	}

	values := make(config)

	for _, st := range set.Statements() {
		switch st.Kind {
		case cfg.KindCommand:
			values[st.Key] = "true"

		case cfg.KindSetting:
			values[st.Key] = st.Val

		case cfg.KindBind:
			// Binds have no flag equivalent
		}
	}

	return values, nil
}

// config implements [kong.Resolver] for grammar-formatted config files.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but the grammar's
	// identifiers use underscores. Try both forms.
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	// Look up the value in our config
	if value, ok := r[name]; ok {
		return value, nil
	}

	// Try underscore variant
	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}
