package commands

import (
	"fmt"

	"git.home.luguber.info/inful/dailyreport/internal/version"
)

// VersionCmd implements the 'version' command.
type VersionCmd struct{}

func (v *VersionCmd) Run(g *Global, _ *CLI) error {
	out := g.out()
	_, _ = fmt.Fprintf(out, "dailyreport %s\n", version.Version)
	_, _ = fmt.Fprintf(out, "commit: %s\n", version.GitCommit)
	_, _ = fmt.Fprintf(out, "built: %s\n", version.BuildTime)
	return nil
}
