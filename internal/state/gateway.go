package state

import (
	"time"

	"github.com/julianstephens/lockin/internal/constants"
	"github.com/julianstephens/lockin/internal/kv"
	"github.com/julianstephens/lockin/internal/logger"
	"github.com/julianstephens/lockin/internal/models"
)

// Gateway owns the key-value store and mediates every read and write of the
// persisted state. State values flow through it by whole-value replacement;
// nothing mutates a loaded state in place.
type Gateway struct {
	store kv.Store
	now   func() time.Time
}

// NewGateway returns a gateway over the given store.
func NewGateway(store kv.Store) *Gateway {
	return &Gateway{store: store, now: time.Now}
}

// Load reads the canonical state. An absent key triggers the one-time legacy
// migration; an unparsable, malformed, or version-mismatched blob is
// discarded for a fresh default. Neither case surfaces an error to the
// caller.
func (g *Gateway) Load() models.LockInState {
	raw, ok := g.store.Get(constants.StateKey)
	if !ok {
		return g.migrateLegacy()
	}

	decoded, err := DecodeState(raw)
	if err != nil {
		logger.Warn("discarding persisted state", "error", err)
		return models.NewLockInState()
	}
	return decoded
}

// Save serializes and writes the state unconditionally. Write failures are
// swallowed at this boundary: the in-memory state stays the source of truth
// until the next successful write.
func (g *Gateway) Save(state models.LockInState) {
	raw, err := EncodeState(state)
	if err != nil {
		logger.Warn("state serialization failed", "error", err)
		return
	}
	if err := g.store.Set(constants.StateKey, raw); err != nil {
		logger.Warn("state write failed", "error", err)
	}
}

// ResetAll erases the canonical key and every legacy key. Removing absent
// keys is a no-op, so the reset is idempotent.
func (g *Gateway) ResetAll() {
	_ = g.store.Remove(constants.StateKey)
	for _, key := range constants.LegacyKeys() {
		_ = g.store.Remove(key)
	}
}

// GetDay returns the snapshot stored for key, or a default snapshot if the
// day has no entry yet. The default is not persisted; a day only reaches
// storage on explicit mutation.
func (g *Gateway) GetDay(state models.LockInState, key string) models.DaySnapshot {
	if day, ok := state.Days[key]; ok {
		return day.Clone()
	}
	return models.NewDaySnapshot(key)
}

// UpsertDay returns a new state with the snapshot written under its own day
// key and updatedAt stamped to the current time. The input state is not
// mutated.
func (g *Gateway) UpsertDay(state models.LockInState, snap models.DaySnapshot) models.LockInState {
	snap.UpdatedAt = g.now().UnixMilli()

	days := make(map[string]models.DaySnapshot, len(state.Days)+1)
	for key, day := range state.Days {
		days[key] = day
	}
	days[snap.Day] = snap

	return models.LockInState{Version: state.Version, Days: days, UI: state.UI}
}

// CommitDay upserts the snapshot and immediately persists the result, for
// writes that must be durable before control returns.
func (g *Gateway) CommitDay(state models.LockInState, snap models.DaySnapshot) models.LockInState {
	next := g.UpsertDay(state, snap)
	g.Save(next)
	return next
}

// SetTab returns a new state with the active UI tab replaced.
func (g *Gateway) SetTab(state models.LockInState, tab string) models.LockInState {
	return models.LockInState{
		Version: state.Version,
		Days:    state.Days,
		UI:      models.UIState{Tab: tab},
	}
}
