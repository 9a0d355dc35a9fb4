package state

import (
	"encoding/json"
	"strings"

	"github.com/julianstephens/lockin/internal/constants"
	"github.com/julianstephens/lockin/internal/kv"
	"github.com/julianstephens/lockin/internal/logger"
	"github.com/julianstephens/lockin/internal/models"
	"github.com/julianstephens/lockin/internal/utils"
)

// LegacyValues is a snapshot of the pre-unified storage format: up to seven
// independent keys, each holding its own serialized JSON value. A field
// whose key is absent or unparsable carries its documented default.
type LegacyValues struct {
	Urges    []models.UrgeEntry
	Energy   float64
	Mood     float64
	Sleep    float64
	Spent    float64
	Missions []models.Mission
	Blocks   models.TimeBlocks
}

// DefaultLegacyValues returns the defaults for every legacy field.
func DefaultLegacyValues() LegacyValues {
	return LegacyValues{
		Urges:    []models.UrgeEntry{},
		Energy:   constants.DefaultEnergy,
		Mood:     constants.DefaultMood,
		Sleep:    constants.DefaultSleep,
		Spent:    0,
		Missions: make([]models.Mission, constants.DefaultMissionSlots),
	}
}

// IsDefault reports whether every legacy value equals its default, meaning
// there is nothing worth migrating.
func (v LegacyValues) IsDefault() bool {
	if len(v.Urges) != 0 {
		return false
	}
	if v.Energy != constants.DefaultEnergy || v.Mood != constants.DefaultMood || v.Sleep != constants.DefaultSleep || v.Spent != 0 {
		return false
	}
	for _, m := range v.Missions {
		if strings.TrimSpace(m.Text) != "" {
			return false
		}
	}
	return v.Blocks.AM == "" && v.Blocks.PM == ""
}

// ReadLegacyValues snapshots the legacy keys from a store. Each field is
// decoded independently; a malformed value falls back to that field's
// default without aborting the others.
func ReadLegacyValues(store kv.Store) LegacyValues {
	vals := DefaultLegacyValues()

	if raw, ok := store.Get(constants.LegacyUrgesKey); ok {
		var urges []models.UrgeEntry
		if err := json.Unmarshal([]byte(raw), &urges); err == nil && urges != nil {
			vals.Urges = urges
		}
	}

	readLegacyNumber(store, constants.LegacyEnergyKey, &vals.Energy)
	readLegacyNumber(store, constants.LegacyMoodKey, &vals.Mood)
	readLegacyNumber(store, constants.LegacySleepKey, &vals.Sleep)
	readLegacyNumber(store, constants.LegacySpentKey, &vals.Spent)

	if raw, ok := store.Get(constants.LegacyMissionsKey); ok {
		var missions []models.Mission
		if err := json.Unmarshal([]byte(raw), &missions); err == nil && missions != nil {
			vals.Missions = missions
		}
	}

	if raw, ok := store.Get(constants.LegacyBlocksKey); ok {
		var blocks models.TimeBlocks
		if err := json.Unmarshal([]byte(raw), &blocks); err == nil {
			vals.Blocks = blocks
		}
	}

	return vals
}

func readLegacyNumber(store kv.Store, key string, dst *float64) {
	raw, ok := store.Get(key)
	if !ok {
		return
	}
	var v float64
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		*dst = v
	}
}

// PlanMigration is the pure migration decision: given the legacy snapshot
// and today's day key, it returns the state to use and whether anything was
// actually migrated. All-default legacy values are a no-op that must not
// write anything.
func PlanMigration(legacy LegacyValues, todayKey string, nowMillis int64) (models.LockInState, bool) {
	next := models.NewLockInState()
	if legacy.IsDefault() {
		return next, false
	}

	day := models.NewDaySnapshot(todayKey)
	day.Energy = legacy.Energy
	day.Mood = legacy.Mood
	day.Sleep = legacy.Sleep
	day.Spent = legacy.Spent
	day.Urges = legacy.Urges
	if len(legacy.Missions) > 0 {
		day.Missions = legacy.Missions
	}
	if legacy.Blocks.AM != "" || legacy.Blocks.PM != "" {
		blocks := legacy.Blocks
		day.Blocks = &blocks
	}
	day.UpdatedAt = nowMillis

	next.Days[todayKey] = day
	return next, true
}

// migrateLegacy runs when the canonical key is absent. A successful
// migration writes the unified state and removes its own triggers (the
// legacy keys), so it runs at most once; removal failures are swallowed.
func (g *Gateway) migrateLegacy() models.LockInState {
	now := g.now()
	next, migrated := PlanMigration(ReadLegacyValues(g.store), utils.DayKey(now), now.UnixMilli())
	if !migrated {
		return next
	}

	g.Save(next)
	for _, key := range constants.LegacyKeys() {
		_ = g.store.Remove(key)
	}
	logger.Info("migrated legacy storage", "day", utils.DayKey(now))
	return next
}
