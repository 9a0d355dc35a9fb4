package analytics

import (
	"testing"

	"github.com/julianstephens/lockin/internal/models"
)

func TestCalcRisk(t *testing.T) {
	tests := []struct {
		name        string
		day         models.DaySnapshot
		wantLevel   RiskLevel
		wantReasons int
		wantGaveIn  int
	}{
		{
			name:      "default day is low risk",
			day:       models.NewDaySnapshot("2025-12-31"),
			wantLevel: RiskLow,
		},
		{
			name: "single trigger is elevated",
			day: models.DaySnapshot{
				Energy: 3, Mood: 3, Sleep: 5,
			},
			wantLevel:   RiskElevated,
			wantReasons: 1,
		},
		{
			name: "one slip alone does not trigger",
			day: models.DaySnapshot{
				Energy: 3, Mood: 3, Sleep: 7,
				Urges: []models.UrgeEntry{urge(false)},
			},
			wantLevel:  RiskLow,
			wantGaveIn: 1,
		},
		{
			name: "everything wrong is high",
			day: models.DaySnapshot{
				Energy: 2, Mood: 2, Sleep: 4,
				Urges: []models.UrgeEntry{urge(false), urge(false), urge(true)},
			},
			wantLevel:   RiskHigh,
			wantReasons: 4,
			wantGaveIn:  2,
		},
		{
			name: "boundary values do not trigger",
			day: models.DaySnapshot{
				Energy: 3, Mood: 3, Sleep: 6,
			},
			wantLevel: RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcRisk(tt.day)
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %s, want %s", got.Level, tt.wantLevel)
			}
			if len(got.Reasons) != tt.wantReasons {
				t.Errorf("len(Reasons) = %d, want %d", len(got.Reasons), tt.wantReasons)
			}
			if got.GaveIn != tt.wantGaveIn {
				t.Errorf("GaveIn = %d, want %d", got.GaveIn, tt.wantGaveIn)
			}
		})
	}
}
