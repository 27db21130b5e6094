package git

import (
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	ggit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
	"git.home.luguber.info/inful/dailyreport/internal/logfields"
)

// Author identifies who signs report commits.
type Author struct {
	Name  string
	Email string
}

// Committer stages and commits report files.
type Committer struct {
	root    string
	author  Author
	message string
	now     func() time.Time
}

// NewCommitter creates a committer for the repository enclosing root. message may
// contain {date}.
func NewCommitter(root string, author Author, message string) *Committer {
	return &Committer{root: root, author: author, message: message, now: time.Now}
}

// Message renders the commit message for date.
func (c *Committer) Message(date string) string {
	return strings.ReplaceAll(c.message, "{date}", date)
}

// Commit stages paths and records a commit, returning its hash.
func (c *Committer) Commit(date string, paths ...string) (string, error) {
	repo, err := ggit.PlainOpenWithOptions(c.root, &ggit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", ClassifyGitError(err, "open", c.root)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", ClassifyGitError(err, "worktree", c.root)
	}
	top := wt.Filesystem.Root()

	for _, p := range paths {
		rel, err := relativeTo(top, p)
		if err != nil {
			return "", err
		}
		if _, err := wt.Add(rel); err != nil {
			return "", ClassifyGitError(err, "add", p)
		}
	}

	hash, err := wt.Commit(c.Message(date), &ggit.CommitOptions{
		Author: &object.Signature{Name: c.author.Name, Email: c.author.Email, When: c.now()},
	})
	if err != nil {
		return "", ClassifyGitError(err, "commit", top)
	}
	slog.Info("Committed daily report", logfields.Date(date), logfields.Commit(hash.String()[:8]))
	return hash.String(), nil
}

func relativeTo(top, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ClassifyGitError(err, "resolve", path)
	}
	// The worktree root may be a resolved symlink (macOS /var -> /private/var).
	if resolved, rerr := filepath.EvalSymlinks(abs); rerr == nil {
		abs = resolved
	}
	if resolvedTop, rerr := filepath.EvalSymlinks(top); rerr == nil {
		top = resolvedTop
	}
	rel, err := filepath.Rel(top, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.GitError("path is outside the repository worktree").
			WithCategory(errors.CategoryConfig).
			WithContext("path", path).
			WithContext("worktree", top).
			Build()
	}
	return filepath.ToSlash(rel), nil
}
