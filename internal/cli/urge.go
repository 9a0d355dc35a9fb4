package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lockin/internal/models"
	"github.com/julianstephens/lockin/internal/validation"
)

type UrgeLogCmd struct {
	Type      string `arg:"" help:"Urge type (scrolling|gaming|junk_food|late_snacking|spending|gambling|alcohol|weed|vape|smoking|porn|custom)."`
	Intensity int    `help:"Intensity from 1 to 5." default:"3"`
	Resisted  bool   `help:"Whether the urge was resisted." negatable:""`
	Label     string `help:"Label for custom urges."`
	Note      string `help:"Optional note."`
	Day       string `help:"Day key (YYYY-MM-DD), defaults to today."`
}

func (c *UrgeLogCmd) Run(ctx *Context) error {
	key, err := resolveDay(c.Day)
	if err != nil {
		return err
	}

	entry := models.UrgeEntry{
		ID:          uuid.NewString(),
		Type:        models.UrgeType(c.Type),
		CustomLabel: c.Label,
		Intensity:   c.Intensity,
		Resisted:    c.Resisted,
		Note:        c.Note,
		CreatedAt:   time.Now().UnixMilli(),
	}
	if err := validation.ValidateUrge(entry); err != nil {
		return err
	}

	day := ctx.Gateway.GetDay(ctx.State, key)
	day.Urges = append(day.Urges, entry)
	ctx.State = ctx.Gateway.CommitDay(ctx.State, day)

	outcome := "gave in"
	if entry.Resisted {
		outcome = "resisted"
	}
	fmt.Printf("Logged %s urge (%d/5, %s) for %s\n", entry.Label(), entry.Intensity, outcome, key)
	return nil
}

type UrgeListCmd struct {
	Day string `help:"Day key (YYYY-MM-DD), defaults to today."`
}

func (c *UrgeListCmd) Run(ctx *Context) error {
	key, err := resolveDay(c.Day)
	if err != nil {
		return err
	}

	day := ctx.Gateway.GetDay(ctx.State, key)
	if len(day.Urges) == 0 {
		fmt.Printf("No urges logged for %s\n", key)
		return nil
	}

	// Newest-first display order
	urges := day.Urges
	sort.Slice(urges, func(i, j int) bool {
		return urges[i].CreatedAt > urges[j].CreatedAt
	})

	fmt.Println(headingStyle.Render(fmt.Sprintf("Urges for %s", key)))
	for _, entry := range urges {
		outcome := badgeRed.Render("gave in")
		if entry.Resisted {
			outcome = badgeControlled.Render("resisted")
		}
		at := time.UnixMilli(entry.CreatedAt).Format("15:04")
		fmt.Printf("  %s  %-14s %d/5  %s  %s\n", at, entry.Label(), entry.Intensity, outcome, dimStyle.Render(entry.ID))
		if entry.Note != "" {
			fmt.Printf("         %s\n", dimStyle.Render(entry.Note))
		}
	}
	return nil
}

type UrgeDeleteCmd struct {
	ID string `arg:"" help:"ID of the urge entry to delete."`
}

func (c *UrgeDeleteCmd) Run(ctx *Context) error {
	key, idx, err := findUrge(ctx.State, c.ID)
	if err != nil {
		return err
	}

	day := ctx.Gateway.GetDay(ctx.State, key)
	day.Urges = append(day.Urges[:idx], day.Urges[idx+1:]...)
	ctx.State = ctx.Gateway.CommitDay(ctx.State, day)

	fmt.Printf("Deleted urge entry %s from %s\n", c.ID, key)
	return nil
}
