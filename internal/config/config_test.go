package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, DefaultFile))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "template.md", cfg.TemplatePath())
	assert.Equal(t, "new_report.md", cfg.WorkingPath())
	assert.Equal(t, "reports", cfg.ReportsDir())
	assert.Equal(t, []string{"todo"}, cfg.CarrySections)
	assert.Equal(t, "2006-01-02", cfg.Archive.DateFormat)
	assert.False(t, cfg.Git.Commit)
}

func TestLoad_FileRootDefaultsToConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
paths:
  template: tpl/daily.md
  reports: archive
carry_sections: [todo, blockers]
git:
  commit: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, filepath.Join(dir, "tpl", "daily.md"), cfg.TemplatePath())
	assert.Equal(t, filepath.Join(dir, "new_report.md"), cfg.WorkingPath())
	assert.Equal(t, filepath.Join(dir, "archive"), cfg.ReportsDir())
	assert.Equal(t, []string{"todo", "blockers"}, cfg.CarrySections)
	assert.True(t, cfg.Git.Commit)
	assert.Equal(t, DefaultGitMessage, cfg.Git.Message)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DAILYREPORT_TEST_AUTHOR", "Ada")
	path := writeConfig(t, dir, "git:\n  author_name: ${DAILYREPORT_TEST_AUTHOR}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada", cfg.Git.AuthorName)
}

func TestLoad_DotEnvDoesNotOverrideProcessEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("DAILYREPORT_TEST_EMAIL=dotenv@example.com\nDAILYREPORT_TEST_NAME=fromfile\n"), 0o600))
	t.Setenv("DAILYREPORT_TEST_NAME", "fromenv")
	t.Cleanup(func() { _ = os.Unsetenv("DAILYREPORT_TEST_EMAIL") })
	path := writeConfig(t, dir, "git:\n  author_name: ${DAILYREPORT_TEST_NAME}\n  author_email: ${DAILYREPORT_TEST_EMAIL}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.Git.AuthorName)
	assert.Equal(t, "dotenv@example.com", cfg.Git.AuthorEmail)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "paths: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad clock", func(c *Config) { c.Schedule.At = "25:99" }, "schedule.at"},
		{"bad timezone", func(c *Config) { c.Schedule.Timezone = "Mars/Olympus" }, "schedule.timezone"},
		{"layout without date", func(c *Config) { c.Archive.DateFormat = "report" }, "archive.date_format"},
		{"layout with separator", func(c *Config) { c.Archive.DateFormat = "2006/01/02" }, "archive.date_format"},
		{"empty carry", func(c *Config) { c.CarrySections = []string{" "} }, "carry_sections"},
		{"unknown level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"unknown format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)
			classified, ok := errors.AsClassified(err)
			require.True(t, ok)
			assert.Equal(t, errors.CategoryValidation, classified.Category())
			field, _ := classified.Context().GetString("field")
			assert.Equal(t, tt.field, field)
		})
	}

	require.NoError(t, Validate(Default()))
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock(" 07:45 ")
	require.NoError(t, err)
	assert.Equal(t, uint(7), h)
	assert.Equal(t, uint(45), m)

	_, _, err = ParseClock("7pm")
	assert.Error(t, err)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)

	require.NoError(t, Init(path, false))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Your Name", cfg.Git.AuthorName)
	assert.Equal(t, DefaultTemplate, cfg.Paths.Template)

	err = Init(path, false)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryAlreadyExists))

	require.NoError(t, Init(path, true))
}

func TestLoggingConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LoggingConfig{Level: "warn", Format: "JSON"}.NewLogger(&buf, false)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	assert.Equal(t, "DEBUG", LoggingConfig{Level: "error"}.SlogLevel(true).String())
}
