package backups

import (
	"fmt"

	"daytrack/internal/backup"
	"daytrack/internal/cli"
	"daytrack/internal/storage"
)

// manager builds a backup manager for the active store, which only makes
// sense for the sqlite backend.
func manager(ctx *cli.Context) (*backup.Manager, error) {
	path := ctx.Store.GetConfigPath()
	if storage.KindForPath(path) != storage.KindSQLite {
		return nil, fmt.Errorf("backups are only supported for the sqlite backend")
	}
	return backup.NewManager(path), nil
}

type CreateCmd struct{}

func (c *CreateCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	path, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("Created backup %s\n", path)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		fmt.Println("No backups yet. Create one with 'daytrack backup create'.")
		return nil
	}

	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Path, b.Size)
	}
	return nil
}

type RestoreCmd struct {
	Path string `arg:"" help:"Path to the backup file to restore."`
}

func (c *RestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close database before restore: %w", err)
	}
	if err := mgr.RestoreBackup(c.Path); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Printf("Restored database from %s\n", c.Path)
	return nil
}
