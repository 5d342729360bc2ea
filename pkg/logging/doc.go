// Package logging provides structured logging for the dynamite CLI.
//
// The package wraps Go's standard slog package with a small leveled API
// that tags every entry with the subsystem it came from, so per-service
// output (Suricata, Zeek, Filebeat, the command synthesizer itself) can be
// filtered and categorized.
//
// # Usage
//
//	import "github.com/vlabsio/dynamite-nsm/pkg/logging"
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Suricata", "loaded %d rule-sets", n)
//	logging.Debug("Cmdline", "assembled grammar with %d flags", len(flags))
//	logging.Error("Config", err, "failed to persist %s", path)
//
// Log calls made before Init fall back to stderr at info level. Level
// filtering happens at the handler, so filtered-out messages cost no
// allocation.
package logging
