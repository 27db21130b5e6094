package git

import (
	stderrors "errors"
	"strings"

	ggit "github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
)

// ClassifyGitError translates go-git errors into ClassifiedErrors.
func ClassifyGitError(err error, op string, path string) error {
	if err == nil {
		return nil
	}
	if _, ok := errors.AsClassified(err); ok {
		return err
	}

	builder := errors.GitError("git operation failed").
		WithCause(err).
		WithContext("op", op).
		WithContext("path", path)

	l := strings.ToLower(err.Error())
	switch {
	case stderrors.Is(err, ggit.ErrRepositoryNotExists):
		builder.WithCategory(errors.CategoryNotFound).
			WithContext(errors.HintKey, "Run 'git init' in the project directory or set git.commit: false.")
	case strings.Contains(l, "permission denied"):
		builder.WithCategory(errors.CategoryFileSystem)
	case strings.Contains(l, "outside") || strings.Contains(l, "not in worktree"):
		builder.WithCategory(errors.CategoryConfig)
	}
	return builder.Build()
}
