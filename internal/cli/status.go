package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lockin/internal/analytics"
	"github.com/julianstephens/lockin/internal/utils"
)

type StatusCmd struct {
	Day string `help:"Day key (YYYY-MM-DD), defaults to today."`
}

func (c *StatusCmd) Run(ctx *Context) error {
	key, err := resolveDay(c.Day)
	if err != nil {
		return err
	}
	ref, err := utils.ParseDayKey(key)
	if err != nil {
		return err
	}

	day := ctx.Gateway.GetDay(ctx.State, key)
	score := analytics.CalcDailyScore(day)
	risk := analytics.CalcRisk(day)
	streak := analytics.CalcStreak(ctx.State, ref)

	fmt.Println(headingStyle.Render(fmt.Sprintf("Status for %s", key)))
	fmt.Printf("  score  %d/100  %s\n", score.Score, gradeBadge(score.Grade))
	fmt.Printf("  %s\n", dimStyle.Render(fmt.Sprintf(
		"urges %d%%  missions %d%%  energy %d%%  mood %d%%  sleep %d",
		score.Breakdown.UrgeResist, score.Breakdown.Missions,
		score.Breakdown.Energy, score.Breakdown.Mood, score.Breakdown.Sleep,
	)))
	fmt.Printf("  risk   %s", riskBadge(risk.Level))
	if len(risk.Reasons) > 0 {
		fmt.Printf("  %s", dimStyle.Render(strings.Join(risk.Reasons, ", ")))
	}
	fmt.Println()
	fmt.Printf("  streak %d clean day(s)\n", streak)
	return nil
}
