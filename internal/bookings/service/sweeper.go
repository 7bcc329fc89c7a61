package service

import (
	"context"
	"sync"
	"time"

	"travelbook/pkg/config"
	"travelbook/pkg/logger"
)

// Sweeper runs the daily expiry sweep. It sweeps once on Start as a
// catch-up, then sleeps until the next local midnight. The delay is
// recomputed from the wall clock after every sweep rather than re-armed at a
// fixed 24h, so the schedule stays anchored to calendar midnight across DST
// shifts and regardless of how long a sweep takes.
//
// A failed sweep is logged and abandoned; the next midnight firing happens
// on schedule. Cleanup is best-effort, not a correctness path.
type Sweeper struct {
	service BookingService
	log     *logger.Logger
	loc     *time.Location
	timeout time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewSweeper(bookingService BookingService, cfg *config.Config) *Sweeper {
	return &Sweeper{
		service: bookingService,
		log:     cfg.Log,
		loc:     cfg.SweepLocation(),
		timeout: cfg.SweepTimeout,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	go s.run()
}

// Stop disarms the timer and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	<-s.doneCh
}

func (s *Sweeper) run() {
	defer close(s.doneCh)

	s.sweep()

	for {
		delay := NextMidnightDelay(time.Now().In(s.loc))
		s.log.Info("Expiry sweep scheduled", "next_run_in", delay.Round(time.Second).String())

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
			s.sweep()
		case <-s.stopCh:
			timer.Stop()
			s.log.Info("Expiry sweeper stopped")
			return
		}
	}
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	deleted, err := s.service.Sweep(ctx)
	if err != nil {
		s.log.Error("Expiry sweep failed", "error", err)
		return
	}

	s.log.Info("Expiry sweep completed", "deleted_count", deleted)
}

// NextMidnightDelay returns the duration from now until the next midnight in
// now's location. Always in (0, 24h] on a normal day; DST transitions may
// shorten or lengthen it, which is the point of recomputing it every cycle.
func NextMidnightDelay(now time.Time) time.Duration {
	year, month, day := now.Date()
	next := time.Date(year, month, day+1, 0, 0, 0, 0, now.Location())
	return next.Sub(now)
}
