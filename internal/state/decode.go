// Package state implements the persistence gateway: loading, saving, and
// resetting the single LockInState blob, the legacy-format migration, and
// the immutable state-transition helpers the UI layer drives.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/lockin/internal/constants"
	"github.com/julianstephens/lockin/internal/models"
)

var (
	// ErrMalformed reports an unparsable payload or one missing a required
	// top-level field (version, days, ui).
	ErrMalformed = errors.New("malformed state payload")

	// ErrVersionMismatch reports a schema version other than the current
	// constant. There is no partial migration between schema versions; the
	// caller discards the blob and starts from defaults.
	ErrVersionMismatch = errors.New("schema version mismatch")
)

// DecodeState deserializes and validates a persisted state blob. It returns
// a typed failure rather than guessing at a partially valid value. On
// success the result is normalized: every snapshot's day field equals its
// map key, and an absent ui.tab is backfilled to the default without
// touching the rest of the data.
func DecodeState(raw string) (models.LockInState, error) {
	var payload struct {
		Version *int                          `json:"version"`
		Days    map[string]models.DaySnapshot `json:"days"`
		UI      *models.UIState               `json:"ui"`
	}

	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return models.LockInState{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if payload.Version == nil || payload.Days == nil || payload.UI == nil {
		return models.LockInState{}, fmt.Errorf("%w: missing version, days, or ui", ErrMalformed)
	}
	if *payload.Version != models.SchemaVersion {
		return models.LockInState{}, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, *payload.Version, models.SchemaVersion)
	}

	decoded := models.LockInState{
		Version: models.SchemaVersion,
		Days:    make(map[string]models.DaySnapshot, len(payload.Days)),
		UI:      *payload.UI,
	}
	for key, day := range payload.Days {
		day.Day = key
		decoded.Days[key] = day
	}
	if strings.TrimSpace(decoded.UI.Tab) == "" {
		decoded.UI.Tab = constants.DefaultTab
	}

	return decoded, nil
}

// EncodeState serializes a state for storage.
func EncodeState(state models.LockInState) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to serialize state: %w", err)
	}
	return string(data), nil
}
