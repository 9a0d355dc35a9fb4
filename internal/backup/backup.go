// Package backup implements the backup file format and the rotating
// automatic backup manager.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/lockin/internal/constants"
	"github.com/julianstephens/lockin/internal/models"
	"github.com/julianstephens/lockin/internal/state"
)

// File is the backup envelope: {version: 1, exportedAt: <epoch ms>, state}.
type File struct {
	Version    int                 `json:"version"`
	ExportedAt int64               `json:"exportedAt"`
	State      *models.LockInState `json:"state"`
}

// Export serializes a state into a backup file payload.
func Export(st models.LockInState, now time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(File{
		Version:    constants.BackupFormatVersion,
		ExportedAt: now.UnixMilli(),
		State:      &st,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize backup: %w", err)
	}
	return data, nil
}

// Import parses and validates a backup file. The contract is strict: the
// envelope version must be 1, state must be present, and the embedded state
// must pass full schema validation (version, days, and ui all present and
// current). Import is all-or-nothing; on any failure the caller's state is
// left untouched.
func Import(data []byte) (models.LockInState, error) {
	var payload struct {
		Version *int            `json:"version"`
		State   json.RawMessage `json:"state"`
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return models.LockInState{}, fmt.Errorf("invalid backup file: %w", err)
	}
	if payload.Version == nil || *payload.Version != constants.BackupFormatVersion {
		return models.LockInState{}, fmt.Errorf("unsupported backup version (want %d)", constants.BackupFormatVersion)
	}
	if len(payload.State) == 0 || string(payload.State) == "null" {
		return models.LockInState{}, fmt.Errorf("backup file has no state")
	}

	decoded, err := state.DecodeState(string(payload.State))
	if err != nil {
		return models.LockInState{}, fmt.Errorf("invalid backup state: %w", err)
	}
	return decoded, nil
}
