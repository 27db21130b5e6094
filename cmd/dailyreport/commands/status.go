package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/dailyreport/internal/updater"
	"git.home.luguber.info/inful/dailyreport/internal/util/files"
)

// StatusCmd implements the 'status' command. It never writes to disk.
type StatusCmd struct{}

func (s *StatusCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	u := updater.New(cfg)
	status, err := u.Status()
	if err != nil {
		return err
	}

	out := g.out()
	working := filepath.Base(cfg.WorkingPath())
	switch status {
	case updater.StatusWritten:
		_, _ = fmt.Fprintf(out, "%s has been written; run update to archive it.\n", working)
	default:
		_, _ = fmt.Fprintf(out, "%s has not been written today yet.\n", working)
	}
	if today := u.Store().TodayPath(); files.Exists(today) {
		_, _ = fmt.Fprintf(out, "today's archive: %s\n", today)
	}
	return nil
}
