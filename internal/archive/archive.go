// Package archive stores filled daily reports under date-stamped names.
//
// An archive file is written once per day and never overwritten: a second archive for
// the same date is refused so edits made directly in the archive are not lost.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
	"git.home.luguber.info/inful/dailyreport/internal/util/files"
)

// Ext is the archive file extension.
const Ext = ".md"

// ErrArchiveExists is returned when today's report has already been archived.
var ErrArchiveExists = errors.NewError(errors.CategoryAlreadyExists, "today's report already exists").
	Fatal().
	UserAction().
	Build()

// Entry is one archived report.
type Entry struct {
	Date time.Time
	Path string
}

// Store manages the archive directory.
type Store struct {
	dir    string
	layout string
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a store writing <dir>/<date formatted with layout>.md.
func NewStore(dir, layout string, opts ...Option) *Store {
	s := &Store{dir: dir, layout: layout, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the archive directory.
func (s *Store) Dir() string { return s.dir }

// Today returns the current date string.
func (s *Store) Today() string {
	return s.now().Format(s.layout)
}

// PathFor returns the archive path for a date string.
func (s *Store) PathFor(date string) string {
	return filepath.Join(s.dir, date+Ext)
}

// TodayPath returns the archive path for today.
func (s *Store) TodayPath() string {
	return s.PathFor(s.Today())
}

// CheckFree returns ErrArchiveExists when the archive for date is already present.
func (s *Store) CheckFree(date string) error {
	path := s.PathFor(date)
	if files.Exists(path) {
		return existsError(path)
	}
	return nil
}

// Save copies src into the archive file for date and returns its path.
func (s *Store) Save(src, date string) (string, error) {
	path := s.PathFor(date)
	if err := files.CopyExclusive(src, path); err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", existsError(path)
		}
		return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to archive report").
			WithContext("path", path).
			Build()
	}
	return path, nil
}

// List returns archived reports whose names parse with the store layout, newest first.
func (s *Store) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read reports directory").
			WithContext("path", s.dir).
			Build()
	}

	var entries []Entry
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, Ext) {
			continue
		}
		date, err := time.ParseInLocation(s.layout, strings.TrimSuffix(name, Ext), time.Local)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Date: date, Path: filepath.Join(s.dir, name)})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

func existsError(path string) error {
	return ErrArchiveExists.
		WithContext("path", path).
		WithContext(errors.HintKey, fmt.Sprintf("Today's report already exists.\nEdit %s directly.", path))
}
