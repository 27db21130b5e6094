package commands

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/dailyreport/internal/archive"
	"git.home.luguber.info/inful/dailyreport/internal/config"
	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
	"git.home.luguber.info/inful/dailyreport/internal/report"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Section string `arg:"" optional:"" help:"Section to print (case-insensitive)"`
	Date    string `short:"d" help:"Show the archived report for this date instead of the working report"`
}

func (s *ShowCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	doc, err := loadReport(cfg, s.Date)
	if err != nil {
		return err
	}

	out := g.out()
	if s.Section == "" {
		_, _ = fmt.Fprintln(out, strings.Join(doc.Lines(), "\n"))
		return nil
	}
	_, body, ok := doc.Lookup(s.Section)
	if !ok {
		return report.ErrSectionNotFound.
			WithContext("section", s.Section).
			WithContext(errors.HintKey, fmt.Sprintf("Available sections: %s", strings.Join(doc.Names(), ", ")))
	}
	_, _ = fmt.Fprintln(out, body)
	return nil
}

// loadReport parses the working report, or the archive for date when set.
func loadReport(cfg *config.Config, date string) (*report.Document, error) {
	if date == "" {
		return report.ParseFile(cfg.WorkingPath())
	}
	return report.ParseFile(archive.NewStore(cfg.ReportsDir(), cfg.Archive.DateFormat).PathFor(date))
}
