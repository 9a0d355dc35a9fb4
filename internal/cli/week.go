package cli

import (
	"fmt"

	"github.com/julianstephens/lockin/internal/analytics"
	"github.com/julianstephens/lockin/internal/models"
	"github.com/julianstephens/lockin/internal/utils"
)

type WeekCmd struct {
	Date string `help:"Any day key (YYYY-MM-DD) inside the week, defaults to today."`
}

func (c *WeekCmd) Run(ctx *Context) error {
	key, err := resolveDay(c.Date)
	if err != nil {
		return err
	}
	ref, err := utils.ParseDayKey(key)
	if err != nil {
		return err
	}

	// Only days that were actually written count toward the summary;
	// unlogged days would otherwise drag the average with synthetic defaults.
	var week []models.DaySnapshot
	for _, dayKey := range utils.WeekDays(ref) {
		if day, ok := ctx.State.Days[dayKey]; ok {
			week = append(week, day)
		}
	}

	summary := analytics.WeeklySummary(week)

	start := utils.StartOfWeekMonday(ref)
	end := utils.EndOfWeekSunday(ref)
	fmt.Println(headingStyle.Render(fmt.Sprintf("Week %s to %s", utils.DayKey(start), utils.DayKey(end))))

	if len(summary.Days) == 0 {
		fmt.Println("  no logged days this week")
		return nil
	}

	for _, ds := range summary.Days {
		fmt.Printf("  %s  %3d  %s\n", ds.Day, ds.Score, gradeBadge(ds.Grade))
	}
	fmt.Printf("  average %d  urges %d  resisted %d%%\n", summary.Average, summary.TotalUrges, summary.ResistedPct)
	if summary.BestDay != nil && summary.WorstDay != nil {
		fmt.Printf("  best %s (%d)  worst %s (%d)\n",
			summary.BestDay.Day, summary.BestDay.Score,
			summary.WorstDay.Day, summary.WorstDay.Score)
	}
	fmt.Printf("  rank %s  (score %d, %d slip day(s))\n", rankBadge(summary.Rank.Rank), summary.Rank.Score, summary.Rank.SlipDays)
	return nil
}
