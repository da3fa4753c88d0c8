package constants

const (
	AppName            = "daytrack"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/daytrack/daytrack.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Scoring constants
	TotalWeight         = 100.0
	WeightSumTolerance  = 0.1
	MaxTaskTitleLen     = 200
	MaxNotesLen         = 5000
	MaxCompletion       = 100.0
	DefaultStreakTarget = 60.0

	// MinTrendReports is the minimum history size before a trend is reported
	MinTrendReports = 14

	// WeekChunkSize is the number of reports per rolling-average chunk
	WeekChunkSize = 7

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "daytrack-"
	BackupFileSuffix = ".db"
)

// GoalPeriod represents the evaluation window of a productivity goal
type GoalPeriod string

const (
	GoalPeriodDaily   GoalPeriod = "daily"
	GoalPeriodWeekly  GoalPeriod = "weekly"
	GoalPeriodMonthly GoalPeriod = "monthly"
)

// TaskCategories is the suggested (not enforced) set of task categories
var TaskCategories = []string{"work", "health", "learning", "personal", "chores"}
