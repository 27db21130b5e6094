package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
	"git.home.luguber.info/inful/dailyreport/internal/logfields"
	"git.home.luguber.info/inful/dailyreport/internal/util/files"
)

// StarterTemplate is written by SeedTemplate for new projects.
const StarterTemplate = "# Done\n\n# Todo\n\n# Notes\n\n"

// ErrTemplateMissing is returned when the project has no template.
var ErrTemplateMissing = errors.ConfigError("template not found").UserAction().Build()

// Manager checks and prepares the files of one project.
type Manager struct {
	templatePath string
	workingPath  string
	reportsDir   string
}

// NewManager creates a manager for the given resolved paths.
func NewManager(templatePath, workingPath, reportsDir string) *Manager {
	return &Manager{
		templatePath: templatePath,
		workingPath:  workingPath,
		reportsDir:   reportsDir,
	}
}

// Ensure verifies the template exists, seeds the working report from it when absent and
// creates the archive directory. It returns one user-facing notice per action taken.
func (m *Manager) Ensure() ([]string, error) {
	if !files.Exists(m.templatePath) {
		name := filepath.Base(m.templatePath)
		return nil, ErrTemplateMissing.
			WithContext("path", m.templatePath).
			WithContext(errors.HintKey, fmt.Sprintf("there is no %s.\nplease make %s or git pull again.", name, name))
	}

	var notices []string
	if !files.Exists(m.workingPath) {
		if err := files.Copy(m.templatePath, m.workingPath); err != nil {
			return notices, errors.WrapError(err, errors.CategoryFileSystem, "failed to seed working report").
				WithContext("path", m.workingPath).
				Build()
		}
		slog.Info("Seeded working report from template", logfields.Path(m.workingPath))
		notices = append(notices, fmt.Sprintf("make %s by copying %s", filepath.Base(m.workingPath), filepath.Base(m.templatePath)))
	}

	if !files.Exists(m.reportsDir) {
		if err := os.MkdirAll(m.reportsDir, 0o750); err != nil {
			return notices, errors.WrapError(err, errors.CategoryFileSystem, "failed to create reports directory").
				WithContext("path", m.reportsDir).
				Build()
		}
		slog.Info("Created reports directory", logfields.Path(m.reportsDir))
		notices = append(notices, fmt.Sprintf("make %s/ directory to store daily reports.", filepath.Base(m.reportsDir)))
	}

	return notices, nil
}

// SeedTemplate writes StarterTemplate unless a template already exists.
// It reports whether a file was written.
func (m *Manager) SeedTemplate() (bool, error) {
	if files.Exists(m.templatePath) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(m.templatePath), 0o750); err != nil {
		return false, errors.WrapError(err, errors.CategoryFileSystem, "failed to create template directory").
			WithContext("path", m.templatePath).
			Build()
	}
	if err := os.WriteFile(m.templatePath, []byte(StarterTemplate), 0o600); err != nil {
		return false, errors.WrapError(err, errors.CategoryFileSystem, "failed to write template").
			WithContext("path", m.templatePath).
			Build()
	}
	slog.Info("Wrote starter template", logfields.Path(m.templatePath))
	return true, nil
}

// TemplatePath returns the template path.
func (m *Manager) TemplatePath() string { return m.templatePath }

// WorkingPath returns the working report path.
func (m *Manager) WorkingPath() string { return m.workingPath }

// ReportsDir returns the archive directory.
func (m *Manager) ReportsDir() string { return m.reportsDir }
