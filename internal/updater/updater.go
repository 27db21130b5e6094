// Package updater runs the daily report update: detect whether the working report was
// filled in, archive it under today's date and seed tomorrow's report from the template.
package updater

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/dailyreport/internal/archive"
	"git.home.luguber.info/inful/dailyreport/internal/config"
	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
	"git.home.luguber.info/inful/dailyreport/internal/git"
	"git.home.luguber.info/inful/dailyreport/internal/logfields"
	"git.home.luguber.info/inful/dailyreport/internal/report"
	"git.home.luguber.info/inful/dailyreport/internal/util/files"
	"git.home.luguber.info/inful/dailyreport/internal/workspace"
)

// Status is the outcome of an update run.
type Status string

const (
	StatusNotWritten Status = "not_written"
	StatusUpdated    Status = "updated"
	// StatusWritten is reported by Updater.Status for a filled-in report not yet archived.
	StatusWritten Status = "written"
)

// Result describes what a run did.
type Result struct {
	Status Status
	// Notices lists setup actions taken before the comparison.
	Notices     []string
	ArchivePath string
	Date        string
	// Commit is the hash of the report commit, when git.commit is enabled.
	Commit string
	// CommitErr is set when the update succeeded but recording it in git failed.
	CommitErr error
}

// Message returns the line printed to the user for this result.
func (r *Result) Message(workingPath string) string {
	if r.Status == StatusUpdated {
		return "daily report is updated!"
	}
	return fmt.Sprintf("%s has not been written today yet.", filepath.Base(workingPath))
}

// Committer records the archived report; *git.Committer satisfies it.
type Committer interface {
	Commit(date string, paths ...string) (string, error)
}

// Updater wires the workspace, archive store and report model together.
type Updater struct {
	workspace *workspace.Manager
	store     *archive.Store
	carry     []string
	committer Committer
}

// Option configures an Updater.
type Option func(*Updater)

// WithStore replaces the archive store built from the configuration.
func WithStore(store *archive.Store) Option {
	return func(u *Updater) { u.store = store }
}

// WithCommitter replaces the committer built from the configuration.
func WithCommitter(c Committer) Option {
	return func(u *Updater) { u.committer = c }
}

// New builds an Updater from a loaded configuration.
func New(cfg *config.Config, opts ...Option) *Updater {
	u := &Updater{
		workspace: workspace.NewManager(cfg.TemplatePath(), cfg.WorkingPath(), cfg.ReportsDir()),
		store:     archive.NewStore(cfg.ReportsDir(), cfg.Archive.DateFormat),
		carry:     cfg.CarrySections,
	}
	if cfg.Git.Commit {
		u.committer = git.NewCommitter(cfg.Root, git.Author{
			Name:  cfg.Git.AuthorName,
			Email: cfg.Git.AuthorEmail,
		}, cfg.Git.Message)
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Workspace returns the workspace manager.
func (u *Updater) Workspace() *workspace.Manager { return u.workspace }

// Store returns the archive store.
func (u *Updater) Store() *archive.Store { return u.store }

// Load prepares the workspace and parses the working report and the template.
func (u *Updater) Load() (working, template *report.Document, notices []string, err error) {
	notices, err = u.workspace.Ensure()
	if err != nil {
		return nil, nil, notices, err
	}
	working, err = report.ParseFile(u.workspace.WorkingPath())
	if err != nil {
		return nil, nil, notices, err
	}
	template, err = report.ParseFile(u.workspace.TemplatePath())
	if err != nil {
		return nil, nil, notices, err
	}
	return working, template, notices, nil
}

// Run performs one update. The working report is archived and regenerated only when it
// differs from the template. Nothing is written when today's archive already exists or
// when tomorrow's report cannot be synthesized. On error the returned Result is partial:
// it still carries the notices of setup actions that were taken.
func (u *Updater) Run(ctx context.Context) (*Result, error) {
	result := &Result{Date: u.store.Today()}
	working, template, notices, err := u.Load()
	result.Notices = notices
	if err != nil {
		return result, err
	}

	if working.IsSameAs(template) {
		slog.Info("Working report not filled in yet", logfields.Path(u.workspace.WorkingPath()))
		result.Status = StatusNotWritten
		return result, nil
	}

	next, err := report.Tomorrow(working, template, u.carry...)
	if err != nil {
		return result, err
	}
	if err := u.store.CheckFree(result.Date); err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, errors.WrapError(err, errors.CategoryInternal, "update cancelled").Build()
	}

	archivePath, err := u.store.Save(u.workspace.WorkingPath(), result.Date)
	if err != nil {
		return result, err
	}
	slog.Info("Archived working report", logfields.Archive(archivePath), logfields.Date(result.Date))

	if err := files.WriteAtomic(u.workspace.WorkingPath(), next.Bytes(), 0o644); err != nil {
		return result, errors.WrapError(err, errors.CategoryFileSystem, "failed to write tomorrow's report").
			WithContext("path", u.workspace.WorkingPath()).
			WithContext("archive", archivePath).
			Build()
	}
	slog.Info("Seeded tomorrow's report", logfields.Path(u.workspace.WorkingPath()))

	result.Status = StatusUpdated
	result.ArchivePath = archivePath

	if u.committer != nil {
		hash, err := u.committer.Commit(result.Date, archivePath, u.workspace.WorkingPath())
		if err != nil {
			slog.Warn("Failed to commit daily report", logfields.Error(err))
			result.CommitErr = commitError(err, archivePath)
		} else {
			result.Commit = hash
		}
	}
	return result, nil
}

// commitError marks a failed commit as a warning: the report is archived either way.
func commitError(err error, archivePath string) error {
	b := errors.WrapError(err, errors.CategoryGit, "report archived but not committed").
		Warning().
		WithContext("path", archivePath)
	if cause, ok := errors.AsClassified(err); ok {
		if hint, ok := cause.Context().GetString(errors.HintKey); ok {
			b.WithContext(errors.HintKey, hint)
		}
	}
	return b.Build()
}

// Status reports whether the working report differs from the template without changing
// anything on disk. Missing files are treated as errors rather than seeded.
func (u *Updater) Status() (Status, error) {
	if !files.Exists(u.workspace.TemplatePath()) {
		// Ensure fails before touching anything when the template is missing.
		_, err := u.workspace.Ensure()
		return "", err
	}
	template, err := report.ParseFile(u.workspace.TemplatePath())
	if err != nil {
		return "", err
	}
	working, err := report.ParseFile(u.workspace.WorkingPath())
	if err != nil {
		return "", err
	}
	if working.IsSameAs(template) {
		return StatusNotWritten, nil
	}
	return StatusWritten, nil
}
