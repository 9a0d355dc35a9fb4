// Package analytics computes daily scores, risk assessments, streaks, and
// weekly summaries from persisted state. Every function is pure: no I/O, no
// mutation of its inputs.
package analytics

import (
	"math"

	"github.com/julianstephens/lockin/internal/models"
)

// Grade bands a daily score. Thresholds are inclusive on the lower bound
// and evaluated top-down.
type Grade string

const (
	GradeControlled Grade = "CONTROLLED"
	GradeSolid      Grade = "SOLID"
	GradeUnstable   Grade = "UNSTABLE"
	GradeRed        Grade = "RED"
)

// ScoreBreakdown holds the individual components feeding a daily score.
type ScoreBreakdown struct {
	UrgeResist int `json:"urgeResist"`
	Missions   int `json:"missions"`
	Energy     int `json:"energy"`
	Mood       int `json:"mood"`
	Sleep      int `json:"sleep"`
}

// DailyScore is the weighted composite score for a single day.
type DailyScore struct {
	Score     int            `json:"score"`
	Grade     Grade          `json:"grade"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// UrgeResistPercent returns the rounded percentage of resisted entries, or
// 0 for an empty list.
func UrgeResistPercent(entries []models.UrgeEntry) int {
	if len(entries) == 0 {
		return 0
	}
	resisted := 0
	for _, e := range entries {
		if e.Resisted {
			resisted++
		}
	}
	return int(math.Round(100 * float64(resisted) / float64(len(entries))))
}

// MissionCompletionPercent returns the rounded completion percentage over
// active missions only. Inactive (empty-text) slots never count, so a list
// of only empty slots yields 0.
func MissionCompletionPercent(missions []models.Mission) int {
	active, done := 0, 0
	for _, m := range missions {
		if !m.Active() {
			continue
		}
		active++
		if m.Done {
			done++
		}
	}
	if active == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(active)))
}

// SleepScore maps hours of sleep onto a fixed step function. Fractional or
// out-of-table inputs land in the default 70 band.
func SleepScore(hours float64) int {
	switch {
	case hours >= 7 && hours <= 8:
		return 100
	case hours == 9:
		return 90
	case hours == 6 || hours >= 10:
		return 80
	case hours == 5:
		return 60
	case hours == 4:
		return 40
	case hours <= 3:
		return 20
	default:
		return 70
	}
}

// CalcDailyScore computes the weighted daily score and grade for a day:
// 40% urge resistance, 25% mission completion, 15% energy, 10% mood,
// 10% sleep.
func CalcDailyScore(day models.DaySnapshot) DailyScore {
	breakdown := ScoreBreakdown{
		UrgeResist: UrgeResistPercent(day.Urges),
		Missions:   MissionCompletionPercent(day.Missions),
		Energy:     ratingPercent(day.Energy),
		Mood:       ratingPercent(day.Mood),
		Sleep:      SleepScore(day.Sleep),
	}

	raw := 0.40*float64(breakdown.UrgeResist) +
		0.25*float64(breakdown.Missions) +
		0.15*float64(breakdown.Energy) +
		0.10*float64(breakdown.Mood) +
		0.10*float64(breakdown.Sleep)

	score := clampInt(int(math.Round(raw)), 0, 100)

	return DailyScore{
		Score:     score,
		Grade:     gradeFor(score),
		Breakdown: breakdown,
	}
}

// ratingPercent converts a 1-5 rating to a rounded percentage, clamping
// out-of-range stored values into the nominal band first.
func ratingPercent(v float64) int {
	if v < 1 {
		v = 1
	}
	if v > 5 {
		v = 5
	}
	return int(math.Round(v / 5 * 100))
}

func gradeFor(score int) Grade {
	switch {
	case score >= 90:
		return GradeControlled
	case score >= 75:
		return GradeSolid
	case score >= 60:
		return GradeUnstable
	default:
		return GradeRed
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
