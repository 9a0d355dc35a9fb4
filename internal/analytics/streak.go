package analytics

import (
	"time"

	"github.com/julianstephens/lockin/internal/models"
	"github.com/julianstephens/lockin/internal/utils"
)

// CalcStreak counts consecutive clean days walking backward from ref. A day
// is clean iff it holds at least one logged urge and every urge in it was
// resisted. A day with zero urges breaks the streak; it neither counts nor
// gets skipped.
func CalcStreak(state models.LockInState, ref time.Time) int {
	streak := 0
	cursor := ref
	for {
		day, ok := state.Days[utils.DayKey(cursor)]
		if !ok || !cleanDay(day) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

func cleanDay(day models.DaySnapshot) bool {
	if len(day.Urges) == 0 {
		return false
	}
	for _, e := range day.Urges {
		if !e.Resisted {
			return false
		}
	}
	return true
}
