package models

import "strings"

// UrgeType classifies a logged impulse event.
type UrgeType string

const (
	UrgeScrolling    UrgeType = "scrolling"
	UrgeGaming       UrgeType = "gaming"
	UrgeJunkFood     UrgeType = "junk_food"
	UrgeLateSnacking UrgeType = "late_snacking"
	UrgeSpending     UrgeType = "spending"
	UrgeGambling     UrgeType = "gambling"
	UrgeAlcohol      UrgeType = "alcohol"
	UrgeWeed         UrgeType = "weed"
	UrgeVape         UrgeType = "vape"
	UrgeSmoking      UrgeType = "smoking"
	UrgePorn         UrgeType = "porn"
	UrgeCustom       UrgeType = "custom"
)

// UrgeTypes lists every recognized urge type.
var UrgeTypes = []UrgeType{
	UrgeScrolling,
	UrgeGaming,
	UrgeJunkFood,
	UrgeLateSnacking,
	UrgeSpending,
	UrgeGambling,
	UrgeAlcohol,
	UrgeWeed,
	UrgeVape,
	UrgeSmoking,
	UrgePorn,
	UrgeCustom,
}

// IsUrgeType reports whether t is one of the recognized urge types.
func IsUrgeType(t UrgeType) bool {
	for _, known := range UrgeTypes {
		if t == known {
			return true
		}
	}
	return false
}

// UrgeEntry is one logged impulse event. Entries are immutable once created
// (deletion excepted) and belong to exactly one DaySnapshot.
type UrgeEntry struct {
	ID          string   `json:"id"`
	Type        UrgeType `json:"type"`
	CustomLabel string   `json:"customLabel,omitempty"`
	Intensity   int      `json:"intensity"`
	Resisted    bool     `json:"resisted"`
	Note        string   `json:"note,omitempty"`
	CreatedAt   int64    `json:"createdAt"` // epoch milliseconds
}

// Label returns the display label for the entry: the custom label for custom
// urges, the type name otherwise.
func (u UrgeEntry) Label() string {
	if u.Type == UrgeCustom && strings.TrimSpace(u.CustomLabel) != "" {
		return u.CustomLabel
	}
	return string(u.Type)
}
