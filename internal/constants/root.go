package constants

const (
	AppName           = "lockin"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/lockin"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// StateKey is the canonical storage key holding the serialized LockInState blob.
	StateKey = "lockin.state"

	// Legacy storage keys from the pre-unified format. Each key held an
	// independently serialized JSON value. They are read once during
	// migration and removed afterwards.
	LegacyUrgesKey    = "lockin.urges"
	LegacyEnergyKey   = "lockin.energy"
	LegacyMoodKey     = "lockin.mood"
	LegacySleepKey    = "lockin.sleep"
	LegacySpentKey    = "lockin.spent"
	LegacyMissionsKey = "lockin.missions"
	LegacyBlocksKey   = "lockin.timeblocks"

	// Defaults for a fresh day snapshot
	DefaultEnergy       = 3
	DefaultMood         = 3
	DefaultSleep        = 7
	DefaultMissionSlots = 3

	// DefaultTab is the UI tab selected in a fresh state.
	DefaultTab = "today"

	// Backup constants
	MaxBackups          = 14
	BackupDirName       = "backups"
	BackupFilePrefix    = "lockin-"
	BackupFileSuffix    = ".json"
	BackupFormatVersion = 1
)

// LegacyKeys returns every legacy storage key in a stable order.
func LegacyKeys() []string {
	return []string{
		LegacyUrgesKey,
		LegacyEnergyKey,
		LegacyMoodKey,
		LegacySleepKey,
		LegacySpentKey,
		LegacyMissionsKey,
		LegacyBlocksKey,
	}
}
