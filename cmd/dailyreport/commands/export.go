package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
	"git.home.luguber.info/inful/dailyreport/internal/logfields"
	"git.home.luguber.info/inful/dailyreport/internal/markdown"
	"git.home.luguber.info/inful/dailyreport/internal/util/files"
)

// ExportCmd implements the 'export' command.
type ExportCmd struct {
	Date   string `short:"d" help:"Export the archived report for this date instead of the working report"`
	Output string `short:"o" help:"Write HTML to this file instead of stdout" type:"path"`
}

func (e *ExportCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	doc, err := loadReport(cfg, e.Date)
	if err != nil {
		return err
	}

	title := "Daily report"
	if e.Date != "" {
		title = fmt.Sprintf("Daily report %s", e.Date)
	}
	page, err := markdown.Render(doc, markdown.Options{Title: title})
	if err != nil {
		return err
	}

	if e.Output == "" {
		_, err = g.out().Write(page)
		return err
	}
	if err := files.WriteAtomic(e.Output, page, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write export").
			WithContext("path", e.Output).
			Build()
	}
	slog.Info("Exported report", logfields.Path(e.Output))
	return nil
}
