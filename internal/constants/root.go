package constants

import "time"

// SessionState represents the current screen of the TUI application
type SessionState int

const (
	AppName            = "pickadate"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/pickadate/pickadate.db"
	Version            = "v0.1.0"

	// ConnectionEnvVar supplies a Postgres connection string without putting it on the command line
	ConnectionEnvVar = "PICKADATE_DB_CONNECTION"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "pickadate-"
	BackupFileSuffix = ".db"

	// CelebrationDuration is how long the summary banner stays up
	CelebrationDuration = 3 * time.Second

	// DefaultHistoryLimit caps `history` output
	DefaultHistoryLimit = 20
)

// Session States
const (
	StateEntry SessionState = iota
	StateRating
	StateSummary
	StateChooseVariant
)
