package cli

import "fmt"

type TabCmd struct {
	Name string `arg:"" help:"Tab to select (e.g. today, week, settings)."`
}

func (c *TabCmd) Run(ctx *Context) error {
	ctx.State = ctx.Gateway.SetTab(ctx.State, c.Name)
	ctx.Gateway.Save(ctx.State)
	fmt.Printf("Active tab set to %s\n", c.Name)
	return nil
}

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation check." name:"yes"`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Yes {
		return fmt.Errorf("this permanently erases all tracked data; re-run with --yes to confirm")
	}
	ctx.Gateway.ResetAll()
	ctx.State = ctx.Gateway.Load()
	fmt.Println("All data erased.")
	return nil
}
