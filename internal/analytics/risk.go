package analytics

import "github.com/julianstephens/lockin/internal/models"

// RiskLevel bands the number of triggered risk reasons for a day.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskElevated RiskLevel = "ELEVATED"
	RiskHigh     RiskLevel = "HIGH"
)

// Risk is the relapse-risk assessment for a single day.
type Risk struct {
	Level   RiskLevel `json:"level"`
	Reasons []string  `json:"reasons"`
	GaveIn  int       `json:"gaveIn"`
}

// CalcRisk collects the independent risk triggers for a day and bands them:
// HIGH at three or more reasons, ELEVATED at one, LOW otherwise.
func CalcRisk(day models.DaySnapshot) Risk {
	var reasons []string

	if day.Sleep < 6 {
		reasons = append(reasons, "Low sleep")
	}
	if day.Mood <= 2 {
		reasons = append(reasons, "Low mood")
	}
	if day.Energy <= 2 {
		reasons = append(reasons, "Low energy")
	}

	gaveIn := 0
	for _, e := range day.Urges {
		if !e.Resisted {
			gaveIn++
		}
	}
	if gaveIn >= 2 {
		reasons = append(reasons, "Multiple slip events")
	}

	level := RiskLow
	switch {
	case len(reasons) >= 3:
		level = RiskHigh
	case len(reasons) >= 1:
		level = RiskElevated
	}

	return Risk{Level: level, Reasons: reasons, GaveIn: gaveIn}
}
