package system

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"daytrack/internal/backup"
	"daytrack/internal/cli"
	"daytrack/internal/keyring"
	"daytrack/internal/migration"
	"daytrack/internal/storage"
	"daytrack/internal/storage/sqlite"
	"daytrack/internal/utils"
	"daytrack/internal/validation"
	"daytrack/migrations"
)

type DoctorCmd struct{}

type checkResult struct {
	name   string
	status string // "ok", "warn", "fail", "skip"
	detail string
}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	var results []checkResult

	results = append(results, c.checkStorage(ctx))
	results = append(results, c.checkSchema(ctx))
	results = append(results, c.checkBackups(ctx))
	results = append(results, c.checkData(ctx))
	results = append(results, c.checkTimezone(ctx))
	results = append(results, c.checkKeyring(ctx))
	results = append(results, c.checkProcesses())

	failed := 0
	for _, r := range results {
		var marker string
		switch r.status {
		case "ok":
			marker = "✓"
		case "warn":
			marker = "!"
		case "skip":
			marker = "⊘"
		default:
			marker = "❌"
			failed++
		}
		line := fmt.Sprintf("%s %s", marker, r.name)
		if r.detail != "" {
			line += ": " + r.detail
		}
		fmt.Println(line)
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	fmt.Println("\nAll checks passed")
	return nil
}

func (c *DoctorCmd) checkStorage(ctx *cli.Context) checkResult {
	path := ctx.Store.GetConfigPath()
	if storage.KindForPath(path) == storage.KindPostgres {
		return checkResult{"storage", "ok", "postgres connection open"}
	}
	info, err := os.Stat(path)
	if err != nil {
		return checkResult{"storage", "fail", fmt.Sprintf("cannot stat %s: %v", path, err)}
	}
	return checkResult{"storage", "ok", fmt.Sprintf("%s (%d bytes)", path, info.Size())}
}

func (c *DoctorCmd) checkSchema(ctx *cli.Context) checkResult {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return checkResult{"schema version", "skip", "only checked for sqlite"}
	}
	db := store.GetDB()
	if db == nil {
		return checkResult{"schema version", "fail", "database not open"}
	}

	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return checkResult{"schema version", "fail", err.Error()}
	}
	runner := migration.NewRunner(db, sub)
	current, err := runner.CurrentVersion()
	if err != nil {
		return checkResult{"schema version", "fail", err.Error()}
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return checkResult{"schema version", "fail", err.Error()}
	}
	if current < latest {
		return checkResult{"schema version", "warn",
			fmt.Sprintf("at %d, latest is %d, run 'daytrack migrate'", current, latest)}
	}
	if current > latest {
		return checkResult{"schema version", "fail",
			fmt.Sprintf("database version %d is newer than this build (%d)", current, latest)}
	}
	return checkResult{"schema version", "ok", fmt.Sprintf("at %d", current)}
}

func (c *DoctorCmd) checkBackups(ctx *cli.Context) checkResult {
	path := ctx.Store.GetConfigPath()
	if storage.KindForPath(path) != storage.KindSQLite {
		return checkResult{"backups", "skip", "only kept for sqlite"}
	}
	backups, err := backup.NewManager(path).ListBackups()
	if err != nil {
		return checkResult{"backups", "fail", err.Error()}
	}
	if len(backups) == 0 {
		return checkResult{"backups", "warn", "no backups yet, run 'daytrack backup create'"}
	}
	return checkResult{"backups", "ok",
		fmt.Sprintf("%d in %s", len(backups), filepath.Dir(backups[0].Path))}
}

func (c *DoctorCmd) checkData(ctx *cli.Context) checkResult {
	reports, err := ctx.Store.GetAllReports()
	if err != nil {
		return checkResult{"data integrity", "fail", err.Error()}
	}
	var problems []string
	for _, r := range reports {
		if res := validation.ValidateReport(r); !res.Valid() {
			problems = append(problems, fmt.Sprintf("report %s: %v", r.Date, res.Err()))
		}
	}
	goals, err := ctx.Store.GetAllGoals(false)
	if err != nil {
		return checkResult{"data integrity", "fail", err.Error()}
	}
	for _, g := range goals {
		if res := validation.ValidateGoal(g); !res.Valid() {
			problems = append(problems, fmt.Sprintf("goal %s: %v", g.ID, res.Err()))
		}
	}
	if len(problems) > 0 {
		return checkResult{"data integrity", "warn", strings.Join(problems, "; ")}
	}
	return checkResult{"data integrity", "ok",
		fmt.Sprintf("%d report(s), %d goal(s)", len(reports), len(goals))}
}

func (c *DoctorCmd) checkTimezone(ctx *cli.Context) checkResult {
	settings, err := ctx.Store.GetSettings()
	if err != nil || settings.Timezone == "" {
		return checkResult{"timezone", "ok", "using system timezone"}
	}
	if _, err := utils.LoadLocation(settings.Timezone); err != nil {
		return checkResult{"timezone", "fail",
			fmt.Sprintf("configured timezone %q is invalid", settings.Timezone)}
	}
	return checkResult{"timezone", "ok", settings.Timezone}
}

func (c *DoctorCmd) checkKeyring(ctx *cli.Context) checkResult {
	if keyring.IsAvailable() {
		return checkResult{"keyring", "ok", "available"}
	}
	return checkResult{"keyring", "warn", "system keyring unavailable"}
}

// checkProcesses warns when more than one daytrack process is running, since
// concurrent writers can race on the sqlite file.
func (c *DoctorCmd) checkProcesses() checkResult {
	procs, err := ps.Processes()
	if err != nil {
		return checkResult{"processes", "skip", "cannot list processes"}
	}
	count := 0
	for _, p := range procs {
		if strings.HasPrefix(p.Executable(), "daytrack") {
			count++
		}
	}
	if count > 1 {
		return checkResult{"processes", "warn",
			fmt.Sprintf("%d daytrack processes running", count)}
	}
	return checkResult{"processes", "ok", "no concurrent instances"}
}
