package cli

import (
	"fmt"

	"github.com/julianstephens/lockin/internal/backup"
	"github.com/julianstephens/lockin/internal/models"
	"github.com/julianstephens/lockin/internal/state"
	"github.com/julianstephens/lockin/internal/utils"
)

// Context carries the gateway, the backup manager, and the current state
// value through command execution. Commands replace State wholesale after
// each mutation; nothing edits it in place.
type Context struct {
	Gateway *state.Gateway
	Backups *backup.Manager
	State   models.LockInState
}

// resolveDay returns the day key a command targets: an explicit --day value
// (validated) or today's key.
func resolveDay(day string) (string, error) {
	if day == "" {
		return utils.TodayKey(), nil
	}
	if _, err := utils.ParseDayKey(day); err != nil {
		return "", err
	}
	return day, nil
}

// findUrge locates an urge entry by ID across all days. Returns the owning
// day key and the entry's index.
func findUrge(st models.LockInState, id string) (string, int, error) {
	for key, day := range st.Days {
		for i, entry := range day.Urges {
			if entry.ID == id {
				return key, i, nil
			}
		}
	}
	return "", 0, fmt.Errorf("urge entry not found: %s", id)
}
