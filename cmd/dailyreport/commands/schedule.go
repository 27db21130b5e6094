package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/dailyreport/internal/config"
	"git.home.luguber.info/inful/dailyreport/internal/daemon"
	"git.home.luguber.info/inful/dailyreport/internal/updater"
)

// ScheduleCmd implements the 'schedule' command.
type ScheduleCmd struct {
	At  string `help:"Time of day to run the update (HH:MM), overrides schedule.at"`
	Now bool   `help:"Also run the update once at startup"`
}

func (s *ScheduleCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	at := cfg.Schedule.At
	if s.At != "" {
		at = s.At
	}
	hour, minute, err := config.ParseClock(at)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	u := updater.New(cfg)
	sched, err := daemon.NewScheduler(u, loc)
	if err != nil {
		return err
	}
	sched.OnResult(func(res *updater.Result, err error) {
		printResult(g, res, err, cfg.WorkingPath())
	})
	if err := sched.ScheduleDaily(hour, minute); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched.Start(ctx)
	_, _ = fmt.Fprintf(g.out(), "running daily update at %02d:%02d (%s); press Ctrl+C to stop\n", hour, minute, loc)
	if s.Now {
		if err := sched.RunNow(); err != nil {
			return err
		}
	}

	<-ctx.Done()
	return sched.Stop()
}
