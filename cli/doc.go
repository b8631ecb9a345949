// Package cli contains the command line interface for cfgpatch.
//
// # Usage
//
// The CLI provides the patch, check, fmt, get, list, browse, and init
// subcommands, plus logging and profiling configuration:
//
//	cfgpatch --log-level=debug patch autoexec.cfg tweaks.cfg
//
// # Configuration Loader
//
// The package includes a Kong configuration loader ([resolve]) that reads
// config files written in the tool's own line grammar and converts them to
// Kong flag values. A JSON config file is also honored when present.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/cfgpatch/pprof)
package cli
