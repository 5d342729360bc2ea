package config

// Default locations used both as fallbacks and as pinned interface
// defaults (a pinned parameter's flag is never required).
const (
	defaultConfigRoot = "/etc/dynamite"

	// DefaultSuricataConfigDir is where Suricata configuration lives.
	DefaultSuricataConfigDir = "/etc/dynamite/suricata"
	// DefaultZeekConfigDir is where Zeek configuration lives.
	DefaultZeekConfigDir = "/etc/dynamite/zeek"
	// DefaultFilebeatConfigDir is where Filebeat configuration lives.
	DefaultFilebeatConfigDir = "/etc/dynamite/filebeat"
	// DefaultLogDir is the root of the per-service log directories.
	DefaultLogDir = "/var/log/dynamite"
	// DefaultBackupDir is where configuration backups are written.
	DefaultBackupDir = "/etc/dynamite/backups"
)
