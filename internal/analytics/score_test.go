package analytics

import (
	"testing"

	"github.com/julianstephens/lockin/internal/models"
)

func urge(resisted bool) models.UrgeEntry {
	return models.UrgeEntry{Type: models.UrgeScrolling, Intensity: 3, Resisted: resisted}
}

func TestUrgeResistPercent(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.UrgeEntry
		want    int
	}{
		{name: "empty list", entries: nil, want: 0},
		{name: "two of three resisted", entries: []models.UrgeEntry{urge(true), urge(true), urge(false)}, want: 67},
		{name: "all resisted", entries: []models.UrgeEntry{urge(true), urge(true)}, want: 100},
		{name: "none resisted", entries: []models.UrgeEntry{urge(false)}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UrgeResistPercent(tt.entries); got != tt.want {
				t.Errorf("UrgeResistPercent() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMissionCompletionPercent(t *testing.T) {
	tests := []struct {
		name     string
		missions []models.Mission
		want     int
	}{
		{name: "no missions", missions: nil, want: 0},
		{name: "only empty slots", missions: []models.Mission{{}, {}, {}}, want: 0},
		{
			name:     "whitespace text is inactive",
			missions: []models.Mission{{Text: "   ", Done: true}},
			want:     0,
		},
		{
			name:     "half done",
			missions: []models.Mission{{Text: "run", Done: true}, {Text: "read"}},
			want:     50,
		},
		{
			name:     "inactive slots ignored",
			missions: []models.Mission{{Text: "run", Done: true}, {}, {}},
			want:     100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MissionCompletionPercent(tt.missions); got != tt.want {
				t.Errorf("MissionCompletionPercent() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSleepScore(t *testing.T) {
	tests := []struct {
		hours float64
		want  int
	}{
		{7, 100},
		{7.5, 100},
		{8, 100},
		{9, 90},
		{6, 80},
		{10, 80},
		{12, 80},
		{5, 60},
		{4, 40},
		{3, 20},
		{0, 20},
		{-1, 20},
		{6.5, 70},
		{9.5, 70},
		{5.5, 70},
	}

	for _, tt := range tests {
		if got := SleepScore(tt.hours); got != tt.want {
			t.Errorf("SleepScore(%v) = %d, want %d", tt.hours, got, tt.want)
		}
	}
}

func TestCalcDailyScorePerfectDay(t *testing.T) {
	day := models.DaySnapshot{
		Day:      "2025-12-31",
		Energy:   5,
		Mood:     5,
		Sleep:    7,
		Missions: []models.Mission{{Text: "x", Done: true}},
		Urges:    []models.UrgeEntry{urge(true)},
	}

	got := CalcDailyScore(day)
	if got.Score != 100 {
		t.Errorf("Score = %d, want 100", got.Score)
	}
	if got.Grade != GradeControlled {
		t.Errorf("Grade = %s, want %s", got.Grade, GradeControlled)
	}
}

func TestCalcDailyScoreDefaultDay(t *testing.T) {
	// A freshly created day has no urges and no active missions; only the
	// rating components contribute: 0.15*60 + 0.10*60 + 0.10*100 = 25.
	day := models.NewDaySnapshot("2025-12-31")

	got := CalcDailyScore(day)
	if got.Score != 25 {
		t.Errorf("Score = %d, want 25", got.Score)
	}
	if got.Grade != GradeRed {
		t.Errorf("Grade = %s, want %s", got.Grade, GradeRed)
	}
}

func TestCalcDailyScoreClampsRatings(t *testing.T) {
	day := models.NewDaySnapshot("2025-12-31")
	day.Energy = 99
	day.Mood = -4

	got := CalcDailyScore(day)
	if got.Breakdown.Energy != 100 {
		t.Errorf("Energy breakdown = %d, want 100", got.Breakdown.Energy)
	}
	if got.Breakdown.Mood != 20 {
		t.Errorf("Mood breakdown = %d, want 20", got.Breakdown.Mood)
	}
}

func TestGradeBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Grade
	}{
		{100, GradeControlled},
		{90, GradeControlled},
		{89, GradeSolid},
		{75, GradeSolid},
		{74, GradeUnstable},
		{60, GradeUnstable},
		{59, GradeRed},
		{0, GradeRed},
	}

	for _, tt := range tests {
		if got := gradeFor(tt.score); got != tt.want {
			t.Errorf("gradeFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
