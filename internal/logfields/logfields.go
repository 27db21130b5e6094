package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath    = "path"
	KeyArchive = "archive"
	KeySection = "section"
	KeyDate    = "date"
	KeyStatus  = "status"
	KeyCommit  = "commit"
	KeyJob     = "job"
	KeyNextRun = "next_run"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr    { return slog.String(KeyPath, p) }
func Archive(p string) slog.Attr { return slog.String(KeyArchive, p) }
func Section(s string) slog.Attr { return slog.String(KeySection, s) }
func Date(d string) slog.Attr    { return slog.String(KeyDate, d) }
func Status(s string) slog.Attr  { return slog.String(KeyStatus, s) }
func Commit(h string) slog.Attr  { return slog.String(KeyCommit, h) }
func Job(name string) slog.Attr  { return slog.String(KeyJob, name) }
func NextRun(t string) slog.Attr { return slog.String(KeyNextRun, t) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
