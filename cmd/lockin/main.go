package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lockin/internal/backup"
	"github.com/julianstephens/lockin/internal/cli"
	"github.com/julianstephens/lockin/internal/constants"
	"github.com/julianstephens/lockin/internal/errors"
	"github.com/julianstephens/lockin/internal/kv"
	"github.com/julianstephens/lockin/internal/logger"
	"github.com/julianstephens/lockin/internal/state"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config directory, or a .db path to use SQLite storage." default:"~/.config/lockin"`
	Debug   bool   `help:"Enable debug logging."`

	Urge struct {
		Log    cli.UrgeLogCmd    `cmd:"" help:"Log an urge event."`
		List   cli.UrgeListCmd   `cmd:"" help:"List urges for a day." default:"1"`
		Delete cli.UrgeDeleteCmd `cmd:"" help:"Delete an urge entry."`
	} `cmd:"" help:"Log and manage urge events."`
	Day struct {
		Show cli.DayShowCmd `cmd:"" help:"Show a day's snapshot." default:"1"`
		Rate cli.DayRateCmd `cmd:"" help:"Set energy/mood/sleep/spent ratings."`
		Plan cli.DayPlanCmd `cmd:"" help:"Set the AM/PM time-block plans."`
	} `cmd:"" help:"View and rate days."`
	Mission struct {
		Add  cli.MissionAddCmd  `cmd:"" help:"Add a mission."`
		Done cli.MissionDoneCmd `cmd:"" help:"Mark a mission as done."`
		List cli.MissionListCmd `cmd:"" help:"List missions for a day." default:"1"`
	} `cmd:"" help:"Manage daily missions."`
	Status cli.StatusCmd `cmd:"" help:"Show score, grade, risk, and streak."`
	Week   cli.WeekCmd   `cmd:"" help:"Show the weekly summary and rank."`
	Tab    cli.TabCmd    `cmd:"" help:"Set the active UI tab."`
	Backup struct {
		Export  cli.BackupExportCmd  `cmd:"" help:"Export state to a backup file."`
		Import  cli.BackupImportCmd  `cmd:"" help:"Import state from a backup file."`
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create an automatic backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List automatic backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from an automatic backup."`
	} `cmd:"" help:"Manage backups."`
	Reset cli.ResetCmd `cmd:"" help:"Erase all tracked data."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal urge and discipline tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config := expandPath(CLI.Config)

	var store kv.Store
	var configDir string
	if strings.HasSuffix(config, ".db") {
		sqlStore, err := kv.NewSQLiteStore(config)
		errors.Fatal(err)
		defer sqlStore.Close()
		store = sqlStore
		configDir = filepath.Dir(config)
	} else {
		store = kv.NewFileStore(config)
		configDir = config
	}

	// Logging is best-effort; commands still run without it.
	_ = logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir})

	gateway := state.NewGateway(store)
	appCtx := &cli.Context{
		Gateway: gateway,
		Backups: backup.NewManager(configDir),
		State:   gateway.Load(),
	}

	errors.Fatal(ctx.Run(appCtx))
}

// expandPath resolves a leading ~ against the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
