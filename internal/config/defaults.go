package config

import "git.home.luguber.info/inful/dailyreport/internal/report"

const (
	DefaultTemplate   = "template.md"
	DefaultWorking    = "new_report.md"
	DefaultReports    = "reports"
	DefaultDateFormat = "2006-01-02"
	DefaultScheduleAt = "18:00"
	DefaultGitMessage = "daily report {date}"
	DefaultGitAuthor  = "dailyreport"
	DefaultGitEmail   = "dailyreport@localhost"
)

// Default returns a configuration with every default applied and Root set to ".".
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Paths.Template == "" {
		cfg.Paths.Template = DefaultTemplate
	}
	if cfg.Paths.Working == "" {
		cfg.Paths.Working = DefaultWorking
	}
	if cfg.Paths.Reports == "" {
		cfg.Paths.Reports = DefaultReports
	}
	if len(cfg.CarrySections) == 0 {
		cfg.CarrySections = append([]string(nil), report.DefaultCarry...)
	}
	if cfg.Archive.DateFormat == "" {
		cfg.Archive.DateFormat = DefaultDateFormat
	}
	if cfg.Git.Message == "" {
		cfg.Git.Message = DefaultGitMessage
	}
	if cfg.Git.AuthorName == "" {
		cfg.Git.AuthorName = DefaultGitAuthor
	}
	if cfg.Git.AuthorEmail == "" {
		cfg.Git.AuthorEmail = DefaultGitEmail
	}
	if cfg.Schedule.At == "" {
		cfg.Schedule.At = DefaultScheduleAt
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
}
