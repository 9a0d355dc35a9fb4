package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/lockin/internal/constants"
	"github.com/julianstephens/lockin/internal/models"
)

// Info describes one backup file on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager writes rotated, timestamped JSON backups of the exported state
// under <configDir>/backups/.
type Manager struct {
	backupDir string
}

// NewManager creates a manager rooted at the given config directory.
func NewManager(configDir string) *Manager {
	return &Manager{backupDir: filepath.Join(configDir, constants.BackupDirName)}
}

// Dir returns the backup directory path.
func (m *Manager) Dir() string {
	return m.backupDir
}

// Create writes a new backup of the state and rotates old ones beyond the
// retention limit. Rotation failures are reported on stderr but do not fail
// the backup.
func (m *Manager) Create(st models.LockInState, now time.Time) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := Export(st, now)
	if err != nil {
		return "", err
	}

	path, err := m.uniquePath(now)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := m.rotate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
	}

	return path, nil
}

// uniquePath generates a timestamped backup filename, adding seconds and
// then a counter when a name is already taken.
func (m *Manager) uniquePath(now time.Time) (string, error) {
	path := m.nameFor(now.Format("20060102-1504"))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	stamp := now.Format("20060102-150405")
	path = m.nameFor(stamp)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = m.nameFor(fmt.Sprintf("%s-%d", stamp, counter))
	}
}

func (m *Manager) nameFor(stamp string) string {
	return filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
}

// List returns the available backups, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)
		stamp = trimCounter(stamp)

		timestamp, err := time.Parse("20060102-1504", stamp)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", stamp)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, Info{Path: path, Timestamp: timestamp, Size: info.Size()})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// trimCounter strips a trailing "-N" uniqueness counter from a timestamp
// stamp, leaving real time components (4 or 6 digits) alone.
func trimCounter(stamp string) string {
	parts := strings.Split(stamp, "-")
	if len(parts) <= 2 {
		return stamp
	}
	last := parts[len(parts)-1]
	if len(last) == 4 || len(last) == 6 {
		return stamp
	}
	for _, c := range last {
		if c < '0' || c > '9' {
			return stamp
		}
	}
	return strings.Join(parts[:len(parts)-1], "-")
}

// rotate removes backups beyond the retention limit, oldest first.
func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore reads a backup file and returns its validated state. The caller
// decides whether to persist it.
func (m *Manager) Restore(path string) (models.LockInState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.LockInState{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	return Import(data)
}
