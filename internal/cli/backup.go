package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/lockin/internal/backup"
)

type BackupExportCmd struct {
	Out string `help:"Output file path." default:"lockin-backup.json"`
}

func (c *BackupExportCmd) Run(ctx *Context) error {
	data, err := backup.Export(ctx.State, time.Now())
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Out, data, 0600); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	fmt.Printf("Exported state to %s\n", c.Out)
	return nil
}

type BackupImportCmd struct {
	In string `arg:"" help:"Backup file to import."`
}

func (c *BackupImportCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.In)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	imported, err := backup.Import(data)
	if err != nil {
		return err
	}

	ctx.State = imported
	ctx.Gateway.Save(ctx.State)
	fmt.Printf("Imported %d day(s) from %s\n", len(imported.Days), c.In)
	return nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	path, err := ctx.Backups.Create(ctx.State, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	backups, err := ctx.Backups.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	for _, info := range backups {
		fmt.Printf("%s  %s  %d bytes\n", info.Timestamp.Format("2006-01-02 15:04"), filepath.Base(info.Path), info.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore from."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	restored, err := ctx.Backups.Restore(c.Path)
	if err != nil {
		return err
	}

	// Snapshot the current state first so a restore is reversible.
	if _, err := ctx.Backups.Create(ctx.State, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to back up current state before restore: %v\n", err)
	}

	ctx.State = restored
	ctx.Gateway.Save(ctx.State)
	fmt.Printf("Restored %d day(s) from %s\n", len(restored.Days), filepath.Base(c.Path))
	return nil
}
