package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/store"
)

const DefaultHousekeepingInterval = time.Hour

// HousekeepingService periodically moves pending invites whose lifetime has
// elapsed into the expired state, so listings and reports do not have to
// re-derive expiry from timestamps.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Timeout  time.Duration
	Now      func() time.Time

	startOnce sync.Once
	stopOnce  sync.Once
	started   bool
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewHousekeepingService creates a sweeper running every interval. A
// non-positive interval defaults to one hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = DefaultHousekeepingInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		Timeout:  DefaultStoreTimeout,
		Now:      time.Now,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the background worker. It does not block. Calls after
// the first are no-ops.
func (s *HousekeepingService) Start() {
	s.startOnce.Do(func() {
		s.started = true
		go s.run()
		s.Logger.Info("housekeeping service started", slog.Duration("interval", s.Interval))
	})
}

// Stop signals the worker and waits for an in-progress sweep to finish.
// Stopping a service that was never started returns immediately.
func (s *HousekeepingService) Stop() {
	s.stopOnce.Do(func() {
		s.startOnce.Do(func() {})
		close(s.stopCh)
		if s.started {
			<-s.doneCh
			s.Logger.Info("housekeeping service stopped")
		}
	})
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) sweep() {
	n, err := s.ExpireInvites(context.Background())
	if err != nil {
		s.Logger.Error("failed to expire stale invites", slog.Any("error", err))
		return
	}
	if n > 0 {
		s.Logger.Info("expired stale invites", slog.Int64("count", n))
	}
}

// ExpireInvites runs one sweep and reports how many invites changed state.
func (s *HousekeepingService) ExpireInvites(ctx context.Context) (int64, error) {
	ctx, cancel := bounded(ctx, s.Timeout, DefaultStoreTimeout)
	defer cancel()

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	n, err := s.Store.Invites().ExpirePendingInvites(ctx, now())
	if err != nil {
		return 0, unavailable(err)
	}
	return n, nil
}
