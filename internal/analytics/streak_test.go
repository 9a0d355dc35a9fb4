package analytics

import (
	"testing"
	"time"

	"github.com/julianstephens/lockin/internal/models"
	"github.com/julianstephens/lockin/internal/utils"
)

func stateWithDays(days ...models.DaySnapshot) models.LockInState {
	st := models.NewLockInState()
	for _, d := range days {
		st.Days[d.Day] = d
	}
	return st
}

func dayAt(ref time.Time, offset int, urges ...models.UrgeEntry) models.DaySnapshot {
	d := models.NewDaySnapshot(utils.DayKey(ref.AddDate(0, 0, offset)))
	d.Urges = urges
	return d
}

func TestCalcStreak(t *testing.T) {
	ref := time.Date(2025, 3, 12, 15, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		state models.LockInState
		want  int
	}{
		{
			name:  "no days at all",
			state: stateWithDays(),
			want:  0,
		},
		{
			name: "two clean days then a slip",
			state: stateWithDays(
				dayAt(ref, 0, urge(true)),
				dayAt(ref, -1, urge(true), urge(true)),
				dayAt(ref, -2, urge(true), urge(false)),
			),
			want: 2,
		},
		{
			name: "today with zero urges breaks immediately",
			state: stateWithDays(
				dayAt(ref, 0),
				dayAt(ref, -1, urge(true)),
			),
			want: 0,
		},
		{
			name: "gap day breaks the walk",
			state: stateWithDays(
				dayAt(ref, 0, urge(true)),
				dayAt(ref, -2, urge(true)),
			),
			want: 1,
		},
		{
			name: "slip today means no streak",
			state: stateWithDays(
				dayAt(ref, 0, urge(false)),
				dayAt(ref, -1, urge(true)),
			),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalcStreak(tt.state, ref); got != tt.want {
				t.Errorf("CalcStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}
