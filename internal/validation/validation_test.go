package validation

import (
	"testing"

	"github.com/julianstephens/lockin/internal/models"
)

func TestValidateUrge(t *testing.T) {
	tests := []struct {
		name    string
		entry   models.UrgeEntry
		wantErr bool
	}{
		{
			name:  "valid standard urge",
			entry: models.UrgeEntry{Type: models.UrgeScrolling, Intensity: 3},
		},
		{
			name:  "valid custom urge",
			entry: models.UrgeEntry{Type: models.UrgeCustom, CustomLabel: "doomscroll", Intensity: 5},
		},
		{
			name:    "unknown type",
			entry:   models.UrgeEntry{Type: "caffeine", Intensity: 3},
			wantErr: true,
		},
		{
			name:    "intensity too low",
			entry:   models.UrgeEntry{Type: models.UrgeGaming, Intensity: 0},
			wantErr: true,
		},
		{
			name:    "intensity too high",
			entry:   models.UrgeEntry{Type: models.UrgeGaming, Intensity: 6},
			wantErr: true,
		},
		{
			name:    "custom without label",
			entry:   models.UrgeEntry{Type: models.UrgeCustom, Intensity: 3},
			wantErr: true,
		},
		{
			name:    "custom with whitespace label",
			entry:   models.UrgeEntry{Type: models.UrgeCustom, CustomLabel: "   ", Intensity: 3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUrge(tt.entry)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUrge() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClampSpent(t *testing.T) {
	if got := ClampSpent(-5); got != 0 {
		t.Errorf("ClampSpent(-5) = %v, want 0", got)
	}
	if got := ClampSpent(12.5); got != 12.5 {
		t.Errorf("ClampSpent(12.5) = %v, want 12.5", got)
	}
}

func TestClampRating(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 1},
		{1, 1},
		{3, 3},
		{5, 5},
		{9, 5},
	}
	for _, tt := range tests {
		if got := ClampRating(tt.in); got != tt.want {
			t.Errorf("ClampRating(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
