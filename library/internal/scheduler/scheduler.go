package scheduler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const sweepTimeout = 5 * time.Minute

// Sweeper runs the periodic circulation maintenance.
type Sweeper interface {
	Sweep(ctx context.Context) (expired int64, overdue int, err error)
}

type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

// New schedules sweeper on spec, in standard cron syntax or a descriptor such as "@every 1h".
func New(spec string, sweeper Sweeper, log *zap.Logger) (*Scheduler, error) {
	log = log.Named("scheduler")
	cl := cronLogger{log: log.Sugar()}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		if _, _, err := sweeper.Sweep(ctx); err != nil {
			log.Error("sweep", zap.Error(err))
		}
	}); err != nil {
		return nil, errors.Wrapf(err, "sweep schedule %q", spec)
	}
	return &Scheduler{cron: c, log: log}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop waits for a running sweep to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("scheduler stop", zap.Error(ctx.Err()))
	}
}

type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
