package cattle

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"liyu1981.xyz/cattle-health-service/pkg/common"
	"liyu1981.xyz/cattle-health-service/pkg/metrics"
)

const DefaultOfflineSweepSchedule = "@every 1m"

// OfflineSweeper runs SweepOfflineSensors on a cron schedule.
type OfflineSweeper struct {
	cattle   *Cattle
	cron     *cron.Cron
	schedule string
	timeout  time.Duration
	log      *zap.Logger
}

func NewOfflineSweeper(c *Cattle, schedule string, timeout time.Duration) *OfflineSweeper {
	if schedule == "" {
		schedule = DefaultOfflineSweepSchedule
	}
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &OfflineSweeper{
		cattle:   c,
		cron:     cron.New(cron.WithLogger(cron.DiscardLogger), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		schedule: schedule,
		timeout:  timeout,
		log:      common.GetLoggerWith(common.LoggerNameScheduler),
	}
}

// Start registers the sweep and launches the scheduler. A bad schedule is
// reported here rather than at the first tick.
func (s *OfflineSweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		_, _ = s.RunOnce(ctx)
	}); err != nil {
		return err
	}

	s.log.Info("Offline sweep scheduled", zap.String("schedule", s.schedule))
	s.cron.Start()
	return nil
}

// Stop halts the scheduler; the returned context is done once a running sweep finishes.
func (s *OfflineSweeper) Stop() context.Context {
	return s.cron.Stop()
}

func (s *OfflineSweeper) RunOnce(ctx context.Context) (int, error) {
	if s.cattle.Notification == nil {
		metrics.OfflineSweepRuns.WithLabelValues("error").Inc()
		return 0, ErrNotifierUnavailable
	}

	created, err := s.cattle.Notification.SweepOfflineSensors(ctx)
	if err != nil {
		metrics.OfflineSweepRuns.WithLabelValues("error").Inc()
		s.log.Warn("Offline sweep failed", zap.Error(err))
		return created, err
	}

	metrics.OfflineSweepRuns.WithLabelValues("ok").Inc()
	return created, nil
}
