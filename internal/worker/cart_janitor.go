package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type IdleSweeper interface {
	SweepIdle() int
}

// CartJanitor discards idle composition sessions on a fixed interval.
type CartJanitor struct {
	sweeper  IdleSweeper
	interval time.Duration
	logger   *zap.SugaredLogger
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewCartJanitor(sweeper IdleSweeper, interval time.Duration, logger *zap.SugaredLogger) *CartJanitor {
	ctx, cancel := context.WithCancel(context.Background())

	return &CartJanitor{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (j *CartJanitor) Start() error {
	j.logger.Infow("starting cart janitor", "interval", j.interval.String())

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()

		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-j.ctx.Done():
				return
			case <-ticker.C:
				if n := j.sweeper.SweepIdle(); n > 0 {
					j.logger.Infow("idle carts discarded", "count", n)
				}
			}
		}
	}()

	return nil
}

// Stop blocks until the sweep loop has exited.
func (j *CartJanitor) Stop() {
	j.logger.Info("stopping cart janitor")
	j.cancel()
	j.wg.Wait()
}
