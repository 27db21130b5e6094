// Package daemon runs the daily report update on a schedule.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
	"git.home.luguber.info/inful/dailyreport/internal/logfields"
	"git.home.luguber.info/inful/dailyreport/internal/updater"
)

// JobName is the gocron job name of the daily update.
const JobName = "daily-update"

// Runner performs one update; *updater.Updater satisfies it.
type Runner interface {
	Run(ctx context.Context) (*updater.Result, error)
}

// Scheduler wraps a gocron scheduler holding the single daily update job.
type Scheduler struct {
	scheduler gocron.Scheduler
	runner    Runner
	job       gocron.Job
	// ctx is handed to every run; set by Start.
	ctx context.Context
	// onResult observes each run, used by the schedule command to print outcomes.
	onResult func(*updater.Result, error)
}

// NewScheduler creates a scheduler evaluating times in loc.
func NewScheduler(runner Runner, loc *time.Location) (*Scheduler, error) {
	if loc == nil {
		loc = time.Local
	}
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategorySchedule, "failed to create scheduler").Build()
	}
	return &Scheduler{scheduler: s, runner: runner, ctx: context.Background()}, nil
}

// OnResult registers a callback invoked after every scheduled run.
func (s *Scheduler) OnResult(fn func(*updater.Result, error)) { s.onResult = fn }

// ScheduleDaily registers the update to run every day at hour:minute.
func (s *Scheduler) ScheduleDaily(hour, minute uint) error {
	job, err := s.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		gocron.NewTask(s.execute),
		gocron.WithName(JobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return errors.WrapError(err, errors.CategorySchedule, "failed to create daily update job").
			WithContext("at", fmt.Sprintf("%02d:%02d", hour, minute)).
			Build()
	}
	s.job = job
	return nil
}

// Start begins running scheduled jobs; runs receive ctx.
func (s *Scheduler) Start(ctx context.Context) {
	s.ctx = ctx
	slog.Info("Starting scheduler", logfields.Job(JobName))
	s.scheduler.Start()
	if next, err := s.NextRun(); err == nil {
		slog.Info("Next daily update scheduled", logfields.NextRun(next.Format(time.RFC3339)))
	}
}

// Stop gracefully shuts down the scheduler, waiting for a running update to finish.
func (s *Scheduler) Stop() error {
	slog.Info("Stopping scheduler")
	if err := s.scheduler.Shutdown(); err != nil {
		return errors.WrapError(err, errors.CategorySchedule, "failed to stop scheduler").Build()
	}
	return nil
}

// NextRun returns when the daily update runs next.
func (s *Scheduler) NextRun() (time.Time, error) {
	if s.job == nil {
		return time.Time{}, errors.NewError(errors.CategorySchedule, "no job scheduled").Build()
	}
	return s.job.NextRun()
}

// RunNow triggers the daily update immediately, outside its schedule.
func (s *Scheduler) RunNow() error {
	if s.job == nil {
		return errors.NewError(errors.CategorySchedule, "no job scheduled").Build()
	}
	return s.job.RunNow()
}

// execute is called by gocron for every scheduled run.
func (s *Scheduler) execute() {
	slog.Info("Executing scheduled update", logfields.Job(JobName))
	res, err := s.runner.Run(s.ctx)
	if err != nil {
		slog.Error("Scheduled update failed", logfields.Job(JobName), logfields.Error(err))
	} else {
		slog.Info("Scheduled update finished", logfields.Job(JobName), logfields.Status(string(res.Status)))
	}
	if s.onResult != nil {
		s.onResult(res, err)
	}
}
