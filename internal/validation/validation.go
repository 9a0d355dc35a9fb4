package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lockin/internal/models"
)

// ValidateUrge checks the invariants every stored urge entry must hold:
// a recognized type, an integer intensity in [1,5], and a non-empty trimmed
// custom label when (and only when) the type is custom.
func ValidateUrge(entry models.UrgeEntry) error {
	if !models.IsUrgeType(entry.Type) {
		return fmt.Errorf("unknown urge type: %q", entry.Type)
	}
	if entry.Intensity < 1 || entry.Intensity > 5 {
		return fmt.Errorf("intensity must be between 1 and 5, got %d", entry.Intensity)
	}
	if entry.Type == models.UrgeCustom && strings.TrimSpace(entry.CustomLabel) == "" {
		return fmt.Errorf("custom urges require a non-empty label")
	}
	return nil
}

// ClampSpent clamps a currency amount to be non-negative. Spent values are
// clamped by callers before a snapshot is committed.
func ClampSpent(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// ClampRating clamps a 1-5 rating to its nominal range.
func ClampRating(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
