package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/dailyreport/internal/updater"
)

// UpdateCmd implements the default 'update' command.
type UpdateCmd struct{}

func (u *UpdateCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	res, err := updater.New(cfg).Run(context.Background())
	printResult(g, res, err, cfg.WorkingPath())
	if err != nil {
		return err
	}
	return res.CommitErr
}

// printResult prints the setup notices of res and, for a successful run, its outcome.
func printResult(g *Global, res *updater.Result, err error, workingPath string) {
	if res == nil {
		return
	}
	out := g.out()
	for _, notice := range res.Notices {
		_, _ = fmt.Fprintln(out, notice)
	}
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(out, res.Message(workingPath))
	if res.Commit != "" {
		_, _ = fmt.Fprintf(out, "committed %s\n", shortHash(res.Commit))
	}
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
