package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
)

// DefaultFile is the configuration file looked up when no path is given.
const DefaultFile = "dailyreport.yaml"

// Config represents the application configuration.
type Config struct {
	// Root is the project directory the report paths are relative to.
	Root          string         `yaml:"root,omitempty"`
	Paths         PathsConfig    `yaml:"paths"`
	CarrySections []string       `yaml:"carry_sections,omitempty"`
	Archive       ArchiveConfig  `yaml:"archive"`
	Git           GitConfig      `yaml:"git"`
	Schedule      ScheduleConfig `yaml:"schedule"`
	Logging       LoggingConfig  `yaml:"logging"`
}

// PathsConfig names the files the update flow works on.
type PathsConfig struct {
	Template string `yaml:"template"`
	Working  string `yaml:"working"`
	Reports  string `yaml:"reports"`
}

// ArchiveConfig controls archive file naming.
type ArchiveConfig struct {
	// DateFormat is a Go reference-time layout used as the archive file stem.
	DateFormat string `yaml:"date_format"`
}

// GitConfig enables committing each archived report.
type GitConfig struct {
	Commit      bool   `yaml:"commit"`
	AuthorName  string `yaml:"author_name,omitempty"`
	AuthorEmail string `yaml:"author_email,omitempty"`
	// Message may contain {date}, replaced by the archive date.
	Message string `yaml:"message,omitempty"`
}

// ScheduleConfig configures the schedule command.
type ScheduleConfig struct {
	At       string `yaml:"at"`
	Timezone string `yaml:"timezone,omitempty"`
}

// LoggingConfig configures slog output.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// Load reads the configuration at configPath. A missing file is not an error: the
// defaults describe the classic layout (template.md, new_report.md, reports/) in the
// current directory.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}
	baseDir := "."
	if configPath != "" {
		baseDir = filepath.Dir(configPath)
	}
	loadEnvFile(baseDir)

	if configPath != "" {
		// #nosec G304 -- config path is supplied by the user on the command line.
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			expanded := os.ExpandEnv(string(data))
			if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
				return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse configuration").
					WithContext("path", configPath).
					Build()
			}
			if cfg.Root == "" {
				cfg.Root = baseDir
			} else if !filepath.IsAbs(cfg.Root) {
				cfg.Root = filepath.Join(baseDir, cfg.Root)
			}
		case os.IsNotExist(err):
		default:
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read configuration").
				WithContext("path", configPath).
				Build()
		}
	}

	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// TemplatePath returns the resolved template path.
func (c *Config) TemplatePath() string { return c.resolve(c.Paths.Template) }

// WorkingPath returns the resolved working report path.
func (c *Config) WorkingPath() string { return c.resolve(c.Paths.Working) }

// ReportsDir returns the resolved archive directory.
func (c *Config) ReportsDir() string { return c.resolve(c.Paths.Reports) }

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.NewError(errors.CategoryAlreadyExists, "configuration file already exists").
			WithContext("path", configPath).
			WithContext(errors.HintKey, "Use --force to overwrite it.").
			UserAction().
			Build()
	}

	example := Default()
	example.Root = ""
	example.Git.AuthorName = "Your Name"
	example.Git.AuthorEmail = "you@example.com"

	data, err := yaml.Marshal(example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
