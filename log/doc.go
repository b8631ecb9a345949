// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//	logger.Info("merge complete", slog.Int("statements", n))
//
// A package-level default logger writing to stderr is also provided and
// reconfigured by the CLI flag group via [Config]:
//
//	log.Config(log.WithLevel(log.LevelTrace))
//	log.Trace("parsed line", slog.String("key", key))
package log
