package cli

import (
	"fmt"

	"github.com/julianstephens/lockin/internal/models"
	"github.com/julianstephens/lockin/internal/validation"
)

type DayShowCmd struct {
	Day string `help:"Day key (YYYY-MM-DD), defaults to today."`
}

func (c *DayShowCmd) Run(ctx *Context) error {
	key, err := resolveDay(c.Day)
	if err != nil {
		return err
	}

	day := ctx.Gateway.GetDay(ctx.State, key)
	fmt.Println(headingStyle.Render(key))
	fmt.Printf("  energy %.0f/5  mood %.0f/5  sleep %.1fh  spent %.2f\n", day.Energy, day.Mood, day.Sleep, day.Spent)
	fmt.Printf("  urges: %d  missions: %d\n", len(day.Urges), countActive(day.Missions))
	if day.Blocks != nil {
		if day.Blocks.AM != "" {
			fmt.Printf("  am: %s\n", day.Blocks.AM)
		}
		if day.Blocks.PM != "" {
			fmt.Printf("  pm: %s\n", day.Blocks.PM)
		}
	}
	return nil
}

type DayRateCmd struct {
	Energy *float64 `help:"Energy rating (1-5)."`
	Mood   *float64 `help:"Mood rating (1-5)."`
	Sleep  *float64 `help:"Hours of sleep (0-12)."`
	Spent  *float64 `help:"Amount spent today."`
	Day    string   `help:"Day key (YYYY-MM-DD), defaults to today."`
}

func (c *DayRateCmd) Run(ctx *Context) error {
	if c.Energy == nil && c.Mood == nil && c.Sleep == nil && c.Spent == nil {
		return fmt.Errorf("nothing to update: pass at least one of --energy, --mood, --sleep, --spent")
	}

	key, err := resolveDay(c.Day)
	if err != nil {
		return err
	}

	day := ctx.Gateway.GetDay(ctx.State, key)
	if c.Energy != nil {
		day.Energy = validation.ClampRating(*c.Energy)
	}
	if c.Mood != nil {
		day.Mood = validation.ClampRating(*c.Mood)
	}
	if c.Sleep != nil {
		day.Sleep = *c.Sleep
	}
	if c.Spent != nil {
		day.Spent = validation.ClampSpent(*c.Spent)
	}

	ctx.State = ctx.Gateway.CommitDay(ctx.State, day)
	fmt.Printf("Updated ratings for %s\n", key)
	return nil
}

type DayPlanCmd struct {
	AM  string `help:"Morning plan text."`
	PM  string `help:"Afternoon plan text."`
	Day string `help:"Day key (YYYY-MM-DD), defaults to today."`
}

func (c *DayPlanCmd) Run(ctx *Context) error {
	key, err := resolveDay(c.Day)
	if err != nil {
		return err
	}

	day := ctx.Gateway.GetDay(ctx.State, key)
	blocks := models.TimeBlocks{}
	if day.Blocks != nil {
		blocks = *day.Blocks
	}
	if c.AM != "" {
		blocks.AM = c.AM
	}
	if c.PM != "" {
		blocks.PM = c.PM
	}
	day.Blocks = &blocks

	ctx.State = ctx.Gateway.CommitDay(ctx.State, day)
	fmt.Printf("Updated time blocks for %s\n", key)
	return nil
}

func countActive(missions []models.Mission) int {
	n := 0
	for _, m := range missions {
		if m.Active() {
			n++
		}
	}
	return n
}
