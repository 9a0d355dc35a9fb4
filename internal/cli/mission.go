package cli

import (
	"fmt"

	"github.com/julianstephens/lockin/internal/models"
)

type MissionAddCmd struct {
	Text string `arg:"" help:"Mission text."`
	Day  string `help:"Day key (YYYY-MM-DD), defaults to today."`
}

func (c *MissionAddCmd) Run(ctx *Context) error {
	key, err := resolveDay(c.Day)
	if err != nil {
		return err
	}

	day := ctx.Gateway.GetDay(ctx.State, key)

	// Fill the first empty slot; only append when every slot is taken.
	placed := false
	for i := range day.Missions {
		if !day.Missions[i].Active() {
			day.Missions[i] = models.Mission{Text: c.Text}
			placed = true
			break
		}
	}
	if !placed {
		day.Missions = append(day.Missions, models.Mission{Text: c.Text})
	}

	ctx.State = ctx.Gateway.CommitDay(ctx.State, day)
	fmt.Printf("Added mission for %s: %s\n", key, c.Text)
	return nil
}

type MissionDoneCmd struct {
	Index int    `arg:"" help:"1-based mission number from 'mission list'."`
	Day   string `help:"Day key (YYYY-MM-DD), defaults to today."`
	Undo  bool   `help:"Mark the mission as not done instead."`
}

func (c *MissionDoneCmd) Run(ctx *Context) error {
	key, err := resolveDay(c.Day)
	if err != nil {
		return err
	}

	day := ctx.Gateway.GetDay(ctx.State, key)
	if c.Index < 1 || c.Index > len(day.Missions) {
		return fmt.Errorf("mission %d not found (have %d slots)", c.Index, len(day.Missions))
	}

	mission := &day.Missions[c.Index-1]
	if !mission.Active() {
		return fmt.Errorf("mission %d is empty", c.Index)
	}
	mission.Done = !c.Undo

	ctx.State = ctx.Gateway.CommitDay(ctx.State, day)
	if c.Undo {
		fmt.Printf("Reopened mission %d: %s\n", c.Index, mission.Text)
	} else {
		fmt.Printf("Completed mission %d: %s\n", c.Index, mission.Text)
	}
	return nil
}

type MissionListCmd struct {
	Day string `help:"Day key (YYYY-MM-DD), defaults to today."`
}

func (c *MissionListCmd) Run(ctx *Context) error {
	key, err := resolveDay(c.Day)
	if err != nil {
		return err
	}

	day := ctx.Gateway.GetDay(ctx.State, key)
	fmt.Println(headingStyle.Render(fmt.Sprintf("Missions for %s", key)))
	for i, m := range day.Missions {
		mark := "[ ]"
		if m.Done {
			mark = "[x]"
		}
		text := m.Text
		if !m.Active() {
			text = dimStyle.Render("(empty)")
		}
		fmt.Printf("  %d. %s %s\n", i+1, mark, text)
	}
	return nil
}
