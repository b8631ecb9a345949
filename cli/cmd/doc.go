// Package cmd implements the cfgpatch subcommands: patch, check, fmt,
// get, list, and init.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the tool's own configuration file.
	ConfigIdentifier = "config"
)
