package poller

import (
	"context"
	"time"

	"github.com/jpillora/backoff"
	"go.uber.org/zap"
)

// Refresher is the slice of the workflow service the poller drives.
type Refresher interface {
	RefreshAll(ctx context.Context) error
}

// Poller re-derives every projection on a fixed interval. On upstream
// failure the next attempt is delayed with jittered exponential backoff;
// a successful refresh resets the schedule.
type Poller struct {
	refresher Refresher
	interval  time.Duration
	logger    *zap.Logger
}

func New(refresher Refresher, interval time.Duration, logger *zap.Logger) *Poller {
	return &Poller{
		refresher: refresher,
		interval:  interval,
		logger:    logger.Named("poller"),
	}
}

// Run blocks until the context is cancelled.
func (p *Poller) Run(ctx context.Context) {
	retry := &backoff.Backoff{
		Min:    p.interval,
		Max:    10 * p.interval,
		Factor: 2,
		Jitter: true,
	}

	p.logger.Info("poller started", zap.Duration("interval", p.interval))
	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("poller stopped")
			return
		case <-timer.C:
		}

		if err := p.refresher.RefreshAll(ctx); err != nil {
			if ctx.Err() != nil {
				p.logger.Info("poller stopped")
				return
			}
			delay := retry.Duration()
			p.logger.Warn("refresh failed, backing off",
				zap.Duration("next_attempt_in", delay),
				zap.Error(err),
			)
			timer.Reset(delay)
			continue
		}

		retry.Reset()
		timer.Reset(p.interval)
	}
}
