package models

import (
	"sort"

	"github.com/julianstephens/lockin/internal/constants"
)

// SchemaVersion is the current version tag of the persisted state. Any other
// value in stored data invalidates the whole blob; there is no partial
// migration between schema versions.
const SchemaVersion = 2

// UIState holds the small UI-preferences record persisted with the state.
type UIState struct {
	Tab string `json:"tab"`
}

// LockInState is the root persisted aggregate: the schema version tag, the
// day-key to snapshot mapping, and the UI preferences. It is mutated only by
// whole-value replacement; no operation writes through to a stored state.
type LockInState struct {
	Version int                    `json:"version"`
	Days    map[string]DaySnapshot `json:"days"`
	UI      UIState                `json:"ui"`
}

// NewLockInState returns a fresh default state: current schema version, no
// days, "today" tab.
func NewLockInState() LockInState {
	return LockInState{
		Version: SchemaVersion,
		Days:    map[string]DaySnapshot{},
		UI:      UIState{Tab: constants.DefaultTab},
	}
}

// SortedDayKeys returns the day keys newest-first. YYYY-MM-DD keys sort
// lexicographically in chronological order, so plain string sorting suffices.
func (s LockInState) SortedDayKeys() []string {
	keys := make([]string, 0, len(s.Days))
	for key := range s.Days {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}
