package system

import (
	"fmt"
	"io/fs"

	"daytrack/internal/cli"
	"daytrack/internal/migration"
	"daytrack/migrations"
	"daytrack/internal/storage"
	"daytrack/internal/storage/sqlite"
)

type MigrateCmd struct {
	Status bool `help:"Show the current schema version without applying anything."`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		kind := storage.KindForPath(ctx.Store.GetConfigPath())
		if kind == storage.KindPostgres {
			return fmt.Errorf("postgres migrations are applied automatically on 'daytrack init'")
		}
		return fmt.Errorf("the %s backend has no schema to migrate", kind)
	}

	db := store.GetDB()
	if db == nil {
		return fmt.Errorf("database not open, run 'daytrack init' first")
	}

	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}
	runner := migration.NewRunner(db, sub)

	current, err := runner.CurrentVersion()
	if err != nil {
		return err
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return err
	}

	if c.Status {
		fmt.Printf("Schema version %d of %d\n", current, latest)
		return nil
	}
	if current >= latest {
		fmt.Printf("Schema up to date (version %d)\n", current)
		return nil
	}

	ctx.PerformAutomaticBackup()
	applied, err := runner.ApplyMigrations(func(msg string) { fmt.Println(msg) })
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	fmt.Printf("Applied %d migration(s), now at version %d\n", applied, latest)
	return nil
}
