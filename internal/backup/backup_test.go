package backup

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/lockin/internal/models"
)

func sampleState() models.LockInState {
	st := models.NewLockInState()
	day := models.NewDaySnapshot("2025-03-10")
	day.Energy = 4
	day.Urges = []models.UrgeEntry{{ID: "u1", Type: models.UrgeAlcohol, Intensity: 2, Resisted: true, CreatedAt: 100}}
	day.UpdatedAt = 100
	st.Days[day.Day] = day
	return st
}

func TestExportImportRoundTrip(t *testing.T) {
	st := sampleState()

	data, err := Export(st, time.UnixMilli(1741600000000))
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	got, err := Import(data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if !reflect.DeepEqual(st, got) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, st)
	}
}

func TestImportRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{nope"},
		{name: "wrong version", data: `{"version":2,"exportedAt":1,"state":{"version":2,"days":{},"ui":{"tab":"today"}}}`},
		{name: "missing version", data: `{"exportedAt":1,"state":{"version":2,"days":{},"ui":{"tab":"today"}}}`},
		{name: "missing state", data: `{"version":1,"exportedAt":1}`},
		{name: "null state", data: `{"version":1,"exportedAt":1,"state":null}`},
		{name: "state missing days", data: `{"version":1,"exportedAt":1,"state":{"version":2,"ui":{"tab":"today"}}}`},
		{name: "state missing ui", data: `{"version":1,"exportedAt":1,"state":{"version":2,"days":{}}}`},
		{name: "stale schema version", data: `{"version":1,"exportedAt":1,"state":{"version":1,"days":{},"ui":{"tab":"today"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Import([]byte(tt.data)); err == nil {
				t.Error("Import() succeeded, want descriptive failure")
			}
		})
	}
}

func TestManagerCreateListRestore(t *testing.T) {
	mgr := NewManager(t.TempDir())
	st := sampleState()
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local)

	path, err := mgr.Create(st, now)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if filepath.Dir(path) != mgr.Dir() {
		t.Errorf("backup written to %s, want %s", filepath.Dir(path), mgr.Dir())
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("len(List()) = %d, want 1", len(backups))
	}

	restored, err := mgr.Restore(backups[0].Path)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if !reflect.DeepEqual(st, restored) {
		t.Errorf("restored state mismatch:\n got %+v\nwant %+v", restored, st)
	}
}

func TestManagerRotation(t *testing.T) {
	mgr := NewManager(t.TempDir())
	st := models.NewLockInState()
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	for i := 0; i < 17; i++ {
		if _, err := mgr.Create(st, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("Create() #%d error = %v", i, err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 14 {
		t.Errorf("len(List()) = %d, want retention limit 14", len(backups))
	}

	// Newest first; the oldest three were rotated away
	if !backups[0].Timestamp.After(backups[len(backups)-1].Timestamp) {
		t.Error("List() not sorted newest first")
	}
}

func TestRestoreRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	mgr := NewManager(dir)
	path := filepath.Join(dir, "junk.json")
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := mgr.Restore(path); err == nil {
		t.Error("Restore() accepted a corrupt backup")
	}
}
