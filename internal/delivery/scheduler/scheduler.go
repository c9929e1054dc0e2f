// Package scheduler triggers the periodic import, cleanup and digest passes.
package scheduler

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"eventradar/config"
	deliverycontext "eventradar/internal/delivery/context"
	domainerrors "eventradar/internal/domain/errors"
	"eventradar/internal/domain/lifecycle"
	"eventradar/internal/domain/service"
	logs "eventradar/internal/infra/log"
	"eventradar/internal/usecase"
	"eventradar/internal/util"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Params holds dependencies for the Scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Logger     *slog.Logger
	Metrics    service.MetricsRecorder
	ImportUC   usecase.ImportUsecase
	DispatchUC usecase.DispatchUsecase
	CleanupUC  usecase.CleanupUsecase
	DigestUC   usecase.DigestUsecase
}

// Scheduler runs each job on its cron spec in the configured timezone.
type Scheduler struct {
	cron    *cron.Cron
	loc     *time.Location
	logger  *slog.Logger
	metrics service.MetricsRecorder
	jobs    []*JobState
	now     func() time.Time

	runCtx    context.Context
	runCancel context.CancelFunc
}

// New builds the scheduler and registers the enabled jobs. Jobs are not started until Serve.
func New(params Params) (*Scheduler, error) {
	cfg := params.Config.Scheduler

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load scheduler timezone %q", cfg.Timezone)
	}

	cronLogger := newCronLogger(params.Logger)
	runCtx, runCancel := context.WithCancel(context.Background())

	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger)),
		),
		loc:       loc,
		logger:    params.Logger,
		metrics:   params.Metrics,
		now:       time.Now,
		runCtx:    runCtx,
		runCancel: runCancel,
	}

	jobs := []struct {
		name string
		cfg  config.JobConfig
		run  Job
	}{
		{JobImport, cfg.Jobs.Import, importJob(params.ImportUC, params.DispatchUC, params.Logger)},
		{JobCleanup, cfg.Jobs.Cleanup, cleanupJob(params.CleanupUC, params.Logger)},
		{JobDigest, cfg.Jobs.Digest, digestJob(params.DigestUC, params.Logger)},
	}
	for _, job := range jobs {
		if err := s.add(job.name, job.cfg, job.run); err != nil {
			runCancel()

			return nil, err
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func (s *Scheduler) add(name string, cfg config.JobConfig, run Job) error {
	job := newJobState(name, cfg.Spec, run)
	s.jobs = append(s.jobs, job)

	if !cfg.Enabled {
		s.logger.Info("Job disabled", slog.String(logs.KeyJob, name))

		return nil
	}

	id, err := s.cron.AddFunc(cfg.Spec, func() {
		_ = s.execute(s.runCtx, job)
	})
	if err != nil {
		return errors.Wrapf(err, "invalid cron spec %q for job %s", cfg.Spec, name)
	}
	job.entryID = id

	return nil
}

// Serve starts the cron loop. It returns immediately; the loop stops with the lifecycle.
func (s *Scheduler) Serve(ctx context.Context) error {
	s.cron.Start()
	s.logger.Info("Starting scheduler",
		slog.String("timezone", s.loc.String()),
		slog.Int("scheduled", len(s.cron.Entries())),
	)

	return nil
}

// Trigger runs the named job now, outside its schedule. The overlap rule still applies.
func (s *Scheduler) Trigger(ctx context.Context, name string) error {
	for _, job := range s.jobs {
		if job.name == name {
			return s.execute(context.WithoutCancel(ctx), job)
		}
	}

	return domainerrors.ErrNotFound.WithDetails("unknown job " + name)
}

// Statuses reports every known job, scheduled or not.
func (s *Scheduler) Statuses() []JobStatus {
	statuses := make([]JobStatus, 0, len(s.jobs))
	for _, job := range s.jobs {
		st := job.status()
		if job.entryID != 0 {
			if next := s.cron.Entry(job.entryID).Next; !next.IsZero() {
				st.Next = &next
			}
		}
		statuses = append(statuses, st)
	}

	return statuses
}

func (s *Scheduler) execute(ctx context.Context, job *JobState) error {
	logger := deliverycontext.Logger(ctx, s.logger).With(slog.String(logs.KeyJob, job.name))
	ctx = deliverycontext.WithLogger(deliverycontext.WithJob(ctx, job.name), logger)

	if !job.tryStart() {
		logger.Warn("job skipped: still running")
		s.metrics.JobRun(job.name, service.ResultSkipped, 0)

		return domainerrors.ErrJobRunning
	}

	start := s.now()
	err := runGuarded(ctx, job.run, start.In(s.loc))
	elapsed := s.now().Sub(start)
	job.finish(start, elapsed, err)

	if err != nil {
		logger.Error("Job failed",
			slog.String("took", util.FormatDuration(elapsed)),
			slog.Any("error", err),
		)
		s.metrics.JobRun(job.name, service.ResultError, elapsed)

		return err
	}

	logger.Info("Job finished", slog.String("took", util.FormatDuration(elapsed)))
	s.metrics.JobRun(job.name, service.ResultSuccess, elapsed)

	return nil
}

// runGuarded turns a panicking run into an error so the job is released
// and the next tick runs it again.
func runGuarded(ctx context.Context, run Job, now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("job panicked: %v\n%s", r, debug.Stack())
		}
	}()

	return run(ctx, now)
}

func (s *Scheduler) stop(ctx context.Context) error {
	defer s.runCancel()

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down scheduler")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "running jobs did not finish")
	}
}

func importJob(importUC usecase.ImportUsecase, dispatchUC usecase.DispatchUsecase, logger *slog.Logger) Job {
	return func(ctx context.Context, _ time.Time) error {
		stats, err := importUC.ImportAll(ctx)
		if err != nil {
			return errors.Wrap(err, "import all")
		}

		deliverycontext.Logger(ctx, logger).Info("Import finished",
			slog.Int("total", stats.Total),
			slog.Int("created", stats.Created),
			slog.Int("updated", stats.Updated),
			slog.Int("errors", stats.Errors),
			slog.Int("skipped_no_coords", stats.SkippedNoCoords),
		)

		if len(stats.NewEventIDs) == 0 {
			return nil
		}

		report, err := dispatchUC.NotifyNewEvents(ctx, stats.NewEventIDs)
		if err != nil {
			return errors.Wrap(err, "notify new events")
		}

		deliverycontext.Logger(ctx, logger).Info("New events dispatched",
			slog.Int("events", report.Events),
			slog.Int("messages", report.Messages),
			slog.Int("deactivated", report.Deactivated),
			slog.Int("failed", report.Failed),
		)

		return nil
	}
}

func cleanupJob(cleanupUC usecase.CleanupUsecase, logger *slog.Logger) Job {
	return func(ctx context.Context, now time.Time) error {
		report, err := cleanupUC.Cleanup(ctx, now)
		if err != nil {
			return errors.Wrap(err, "cleanup")
		}

		deliverycontext.Logger(ctx, logger).Info("Cleanup finished",
			slog.Int64("archived", report.Archived),
			slog.Int64("deleted", report.Deleted),
		)

		return nil
	}
}

func digestJob(digestUC usecase.DigestUsecase, logger *slog.Logger) Job {
	return func(ctx context.Context, now time.Time) error {
		report, err := digestUC.SendDailyDigest(ctx, now)
		if err != nil {
			return errors.Wrap(err, "daily digest")
		}

		deliverycontext.Logger(ctx, logger).Info("Daily digest finished",
			slog.String("day", report.Day),
			slog.Int("events", report.Events),
			slog.Int("sent", report.Sent),
			slog.Int("deactivated", report.Deactivated),
			slog.Int("failed", report.Failed),
		)

		return nil
	}
}
