package commands

import (
	"fmt"

	"git.home.luguber.info/inful/dailyreport/internal/archive"
)

// ListCmd implements the 'list' command.
type ListCmd struct {
	Limit int `short:"n" help:"Show at most N reports (0 for all)" default:"0"`
}

func (l *ListCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	entries, err := archive.NewStore(cfg.ReportsDir(), cfg.Archive.DateFormat).List()
	if err != nil {
		return err
	}

	out := g.out()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(out, "no archived reports")
		return nil
	}
	if l.Limit > 0 && len(entries) > l.Limit {
		entries = entries[:l.Limit]
	}
	for _, e := range entries {
		_, _ = fmt.Fprintf(out, "%s\t%s\n", e.Date.Format(cfg.Archive.DateFormat), e.Path)
	}
	return nil
}
