package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/dailyreport/cmd/dailyreport/commands"
	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
	"git.home.luguber.info/inful/dailyreport/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("dailyreport"),
		kong.Description("Archive today's report and seed tomorrow's from the template."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)
	global := &commands.Global{Out: os.Stdout, Logger: slog.Default()}
	if err := parser.Run(global, cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
