package models

import (
	"strings"

	"github.com/julianstephens/lockin/internal/constants"
)

// Mission is a short directive line with a completion flag.
type Mission struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Active reports whether the mission counts toward aggregate calculations.
// Empty-text missions still occupy a slot but are ignored by scoring.
func (m Mission) Active() bool {
	return strings.TrimSpace(m.Text) != ""
}

// TimeBlocks holds the free-text morning and afternoon plans for a day.
type TimeBlocks struct {
	AM string `json:"am"`
	PM string `json:"pm"`
}

// DaySnapshot is the full persisted state for one calendar day, keyed by a
// local-time YYYY-MM-DD day string. The Day field always equals the key the
// snapshot is stored under.
type DaySnapshot struct {
	Day       string      `json:"day"`
	Energy    float64     `json:"energy"`
	Mood      float64     `json:"mood"`
	Sleep     float64     `json:"sleep"`
	Spent     float64     `json:"spent"`
	Missions  []Mission   `json:"missions"`
	Urges     []UrgeEntry `json:"urges"`
	Blocks    *TimeBlocks `json:"blocks,omitempty"`
	UpdatedAt int64       `json:"updatedAt"` // epoch milliseconds
}

// NewDaySnapshot returns the default snapshot for a day that has not been
// written yet: 3/3/7/0 ratings, three empty mission slots, no urges.
func NewDaySnapshot(day string) DaySnapshot {
	return DaySnapshot{
		Day:      day,
		Energy:   constants.DefaultEnergy,
		Mood:     constants.DefaultMood,
		Sleep:    constants.DefaultSleep,
		Spent:    0,
		Missions: make([]Mission, constants.DefaultMissionSlots),
		Urges:    []UrgeEntry{},
	}
}

// Clone returns a deep copy of the snapshot so callers can patch it without
// mutating stored state.
func (d DaySnapshot) Clone() DaySnapshot {
	out := d
	out.Missions = make([]Mission, len(d.Missions))
	copy(out.Missions, d.Missions)
	out.Urges = make([]UrgeEntry, len(d.Urges))
	copy(out.Urges, d.Urges)
	if d.Blocks != nil {
		blocks := *d.Blocks
		out.Blocks = &blocks
	}
	return out
}
