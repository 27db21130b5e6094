package commands

import (
	"fmt"

	"git.home.luguber.info/inful/dailyreport/internal/config"
	"git.home.luguber.info/inful/dailyreport/internal/workspace"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	out := g.out()
	cfgPath := root.ConfigPath()

	// Provide friendly user-facing messages on stdout for CLI integration tests.
	_, _ = fmt.Fprintln(out, "Initializing daily report project")
	_, _ = fmt.Fprintf(out, "Writing configuration to %s\n", cfgPath)
	if err := config.Init(cfgPath, i.Force); err != nil {
		_, _ = fmt.Fprintln(out, "Initialization failed")
		return err
	}

	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	ws := workspace.NewManager(cfg.TemplatePath(), cfg.WorkingPath(), cfg.ReportsDir())
	created, err := ws.SeedTemplate()
	if err != nil {
		return err
	}
	if created {
		_, _ = fmt.Fprintf(out, "Writing starter template to %s\n", cfg.TemplatePath())
	}
	_, _ = fmt.Fprintln(out, "initialized successfully")
	return nil
}
