package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/diillson/pos-sales-dashboard-go/internal/application/usecase"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

// ReportRunner runs one daily report for "yesterday".
type ReportRunner interface {
	RunNow(ctx context.Context) (usecase.RunResult, error)
}

// Scheduler dispara o relatório diário no horário configurado.
// Uma execução que falha é registrada e abandonada até o próximo disparo.
type Scheduler struct {
	runner   ReportRunner
	console  types.ConsoleInterface
	spec     string
	loc      *time.Location
	schedule cron.Schedule
	cron     *cron.Cron

	mu  sync.Mutex
	ctx context.Context
}

// NewScheduler validates the cron expression and timezone from cfg.
func NewScheduler(runner ReportRunner, console types.ConsoleInterface, cfg *types.Config) (*Scheduler, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	schedule, err := cron.ParseStandard(cfg.Schedule.Cron)
	if err != nil {
		return nil, fmt.Errorf("invalid cron schedule %q: %w", cfg.Schedule.Cron, err)
	}

	s := &Scheduler{
		runner:   runner,
		console:  console,
		spec:     cfg.Schedule.Cron,
		loc:      loc,
		schedule: schedule,
		ctx:      context.Background(),
	}

	logger := cronLogger{console: console}
	s.cron = cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	s.cron.Schedule(schedule, cron.FuncJob(s.trigger))

	return s, nil
}

// NextRun returns the first trigger strictly after now, in the configured timezone.
func (s *Scheduler) NextRun(now time.Time) time.Time {
	return s.schedule.Next(now.In(s.loc))
}

// Run starts the cron loop and blocks until ctx is cancelled. With runNow the
// report also runs once immediately.
func (s *Scheduler) Run(ctx context.Context, runNow bool) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	if runNow {
		s.console.LogInfo("Running the daily report at startup...")
		s.runOnce(ctx)
	}

	s.cron.Start()
	s.console.LogInfo("Daily report scheduled with %q (%s); next run at %s",
		s.spec, s.loc, s.NextRun(time.Now()).Format(time.RFC1123))

	<-ctx.Done()

	s.console.LogInfo("Stopping the scheduler...")
	// Espera a execução em andamento terminar.
	<-s.cron.Stop().Done()
	return nil
}

func (s *Scheduler) trigger() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	s.runOnce(ctx)
}

func (s *Scheduler) runOnce(ctx context.Context) {
	result, err := s.runner.RunNow(ctx)
	if err != nil {
		s.console.LogError("Daily report for %s failed: %s. Next attempt at %s",
			result.Date, err, s.NextRun(time.Now()).Format(time.RFC1123))
		return
	}
	s.console.LogSuccess("Daily report for %s delivered to %d recipient(s) in %s",
		result.Date, result.Recipients, result.Duration.Round(time.Millisecond))
}

// cronLogger encaminha os logs internos do cron para o console.
type cronLogger struct {
	console types.ConsoleInterface
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.console.LogInfo("cron: %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.console.LogError("cron: %s: %s %v", msg, err, keysAndValues)
}
