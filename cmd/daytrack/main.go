package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"daytrack/internal/cli"
	"daytrack/internal/cli/backups"
	"daytrack/internal/cli/goals"
	"daytrack/internal/cli/missions"
	"daytrack/internal/cli/reports"
	"daytrack/internal/cli/stats"
	"daytrack/internal/cli/system"
	"daytrack/internal/cli/templates"
	"daytrack/internal/constants"
	"daytrack/internal/errors"
	"daytrack/internal/keyring"
	"daytrack/internal/logger"
	"daytrack/internal/storage"
	"daytrack/internal/storage/postgres"
	"daytrack/internal/storage/sqlite"
)

type reportCmd struct {
	Add     reports.AddCmd     `cmd:"" help:"Save a report from task arguments."`
	Log     reports.LogCmd     `cmd:"" help:"Log a report interactively."`
	List    reports.ListCmd    `cmd:"" help:"List recent reports."`
	Show    reports.ShowCmd    `cmd:"" help:"Show one report in detail."`
	Delete  reports.DeleteCmd  `cmd:"" help:"Soft-delete a report."`
	Restore reports.RestoreCmd `cmd:"" help:"Restore a soft-deleted report."`
}

type templateCmd struct {
	Add        templates.AddCmd        `cmd:"" help:"Create a task template."`
	List       templates.ListCmd       `cmd:"" help:"List templates."`
	Show       templates.ShowCmd       `cmd:"" help:"Show a template's tasks."`
	Delete     templates.DeleteCmd     `cmd:"" help:"Delete a template."`
	SetDefault templates.SetDefaultCmd `cmd:"" name:"set-default" help:"Make a template the default for new reports."`
}

type goalCmd struct {
	Add    goals.AddCmd    `cmd:"" help:"Create a productivity goal."`
	List   goals.ListCmd   `cmd:"" help:"List goals with their progress."`
	Update goals.UpdateCmd `cmd:"" help:"Update a goal."`
	Delete goals.DeleteCmd `cmd:"" help:"Soft-delete a goal."`
}

type missionCmd struct {
	Add      missions.AddCmd      `cmd:"" help:"Create a long-running mission."`
	List     missions.ListCmd     `cmd:"" help:"List missions."`
	Progress missions.ProgressCmd `cmd:"" help:"Set a mission's progress."`
	Complete missions.CompleteCmd `cmd:"" help:"Mark a mission complete."`
	Delete   missions.DeleteCmd   `cmd:"" help:"Soft-delete a mission."`
}

type backupCmd struct {
	Create  backups.CreateCmd  `cmd:"" help:"Create a database backup."`
	List    backups.ListCmd    `cmd:"" help:"List available backups."`
	Restore backups.RestoreCmd `cmd:"" help:"Restore the database from a backup."`
}

var flags struct {
	Version kong.VersionFlag `short:"v" help:"Print version and exit."`
	Config  string           `short:"c" help:"Database path or postgres connection string." default:"${config_path}" env:"DAYTRACK_DB"`
	Debug   bool             `help:"Enable debug logging."`

	Init     system.InitCmd     `cmd:"" help:"Initialize storage."`
	Report   reportCmd          `cmd:"" help:"Manage daily reports."`
	Template templateCmd        `cmd:"" help:"Manage task templates."`
	Goal     goalCmd            `cmd:"" help:"Manage productivity goals."`
	Mission  missionCmd         `cmd:"" help:"Manage long-running missions."`
	Stats    stats.SummaryCmd   `cmd:"" help:"Show streaks, trends, and weekly insights."`
	Settings system.SettingsCmd `cmd:"" help:"Show or change settings."`
	Backup   backupCmd          `cmd:"" help:"Manage database backups."`
	Migrate  system.MigrateCmd  `cmd:"" help:"Apply pending schema migrations."`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks against the installation."`
	Keyring  system.KeyringCmd  `cmd:"" help:"Manage the stored database connection string."`
	Serve    system.ServeCmd    `cmd:"" help:"Serve reports and insights over a local JSON API."`
	Tui      system.TuiCmd      `cmd:"" help:"Open the terminal dashboard."`
}

func main() {
	parser := kong.Parse(&flags,
		kong.Name(constants.AppName),
		kong.Description("Track daily productivity with weighted tasks, streaks, and goals."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	store, err := buildStore(flags.Config)
	if err != nil {
		errors.Fatal(err)
	}

	// Logs always live next to the default database path, even when the
	// data itself is in postgres.
	if err := logger.Init(logger.Config{
		Debug:     flags.Debug,
		ConfigDir: filepath.Dir(storage.ExpandPath(constants.DefaultConfigPath)),
	}); err != nil {
		fmt.Fprintln(os.Stderr, "warning: logging disabled:", err)
	}

	// Every command needs a loaded store except init and the keyring
	// commands, which must work before storage exists.
	cmd := parser.Command()
	if cmd != "init" && !strings.HasPrefix(cmd, "keyring") {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	ctx := &cli.Context{Store: store, Debug: flags.Debug}
	if err := parser.Run(ctx); err != nil {
		errors.Fatal(err)
	}
}

// buildStore picks a backend from the config value. A postgres connection
// string may come from the flag or, failing that, the system keyring.
// Connection strings with embedded passwords are refused; the keyring exists
// so they never land in shell history.
func buildStore(config string) (storage.Provider, error) {
	if config == constants.DefaultConfigPath {
		if connStr, err := keyring.GetConnectionString(); err == nil {
			return postgres.New(connStr), nil
		}
	}

	switch storage.KindForPath(config) {
	case storage.KindPostgres:
		if storage.HasEmbeddedCredentials(config) {
			return nil, fmt.Errorf("connection string contains a password, store it with 'daytrack keyring set' instead")
		}
		return postgres.New(config), nil
	case storage.KindJSON:
		return storage.NewJSONStore(storage.ExpandPath(config)), nil
	default:
		return sqlite.NewStore(storage.ExpandPath(config)), nil
	}
}
