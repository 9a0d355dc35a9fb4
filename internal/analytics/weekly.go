package analytics

import (
	"math"
	"time"

	"github.com/julianstephens/lockin/internal/models"
	"github.com/julianstephens/lockin/internal/utils"
)

// WeekRank bands a weekly score. The thresholds mirror the daily grade
// bands with week-level labels.
type WeekRank string

const (
	RankControlledWeek WeekRank = "CONTROLLED WEEK"
	RankSolidWeek      WeekRank = "SOLID WEEK"
	RankUnstableWeek   WeekRank = "UNSTABLE"
	RankRelapseWeek    WeekRank = "RELAPSE WEEK"
)

// WeeklyRank is the rank computed over a week's worth of urge entries.
type WeeklyRank struct {
	Rank        WeekRank `json:"rank"`
	Score       int      `json:"score"`
	ResistedPct int      `json:"resistedPct"`
	SlipDays    int      `json:"slipDays"`
}

// DayScore pairs a day key with its computed daily score.
type DayScore struct {
	Day   string `json:"day"`
	Score int    `json:"score"`
	Grade Grade  `json:"grade"`
}

// Summary is the weekly rollup. Average is the unweighted mean of per-day
// scores, while ResistedPct is computed over the flattened entry set across
// all days; the two aggregations are intentionally distinct.
type Summary struct {
	Days        []DayScore `json:"days"`
	Average     int        `json:"average"`
	TotalUrges  int        `json:"totalUrges"`
	ResistedPct int        `json:"resistedPct"`
	BestDay     *DayScore  `json:"bestDay,omitempty"`
	WorstDay    *DayScore  `json:"worstDay,omitempty"`
	Rank        WeeklyRank `json:"rank"`
}

// CalcWeeklyRank scores a week from its flattened urge entries: the resisted
// percentage minus a six-point penalty per distinct slip day, clamped to
// [0,100]. A slip day is any local calendar day containing at least one
// non-resisted entry.
func CalcWeeklyRank(entries []models.UrgeEntry) WeeklyRank {
	resisted := 0
	slipDays := map[string]struct{}{}
	for _, e := range entries {
		if e.Resisted {
			resisted++
			continue
		}
		slipDays[utils.DayKey(time.UnixMilli(e.CreatedAt))] = struct{}{}
	}

	pct := 0.0
	if len(entries) > 0 {
		pct = 100 * float64(resisted) / float64(len(entries))
	}

	score := clampInt(int(math.Round(pct-6*float64(len(slipDays)))), 0, 100)

	return WeeklyRank{
		Rank:        rankFor(score),
		Score:       score,
		ResistedPct: int(math.Round(pct)),
		SlipDays:    len(slipDays),
	}
}

func rankFor(score int) WeekRank {
	switch {
	case score >= 90:
		return RankControlledWeek
	case score >= 75:
		return RankSolidWeek
	case score >= 60:
		return RankUnstableWeek
	default:
		return RankRelapseWeek
	}
}

// WeeklySummary rolls up the given days: per-day scores, their unweighted
// average, total and week-wide resisted urge counts, best/worst day, and the
// weekly rank over the flattened entry set. Ties for best and worst both go
// to the first day encountered.
func WeeklySummary(days []models.DaySnapshot) Summary {
	summary := Summary{Days: make([]DayScore, 0, len(days))}

	var all []models.UrgeEntry
	total := 0
	for _, day := range days {
		score := CalcDailyScore(day)
		ds := DayScore{Day: day.Day, Score: score.Score, Grade: score.Grade}
		summary.Days = append(summary.Days, ds)
		total += score.Score
		all = append(all, day.Urges...)

		if summary.BestDay == nil || ds.Score > summary.BestDay.Score {
			best := ds
			summary.BestDay = &best
		}
		if summary.WorstDay == nil || ds.Score < summary.WorstDay.Score {
			worst := ds
			summary.WorstDay = &worst
		}
	}

	if len(days) > 0 {
		summary.Average = int(math.Round(float64(total) / float64(len(days))))
	}
	summary.TotalUrges = len(all)
	summary.ResistedPct = UrgeResistPercent(all)
	summary.Rank = CalcWeeklyRank(all)

	return summary
}
