package scheduler

import (
	"context"
	"sync"
	"time"

	"seedfund/internal/domain/account"
	"seedfund/internal/shared/logger"
)

// CleanupScheduler sweeps expired one-time passcodes and consumed OAuth
// state tokens out of storage. Verification never matches expired rows, so
// the sweep is purely about keeping the tables small.
type CleanupScheduler struct {
	otpRepo        account.OTPRepository
	stateTokenRepo account.StateTokenRepository
	retention      time.Duration
	interval       time.Duration
	logger         logger.Interface
	stopChan       chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup
}

func NewCleanupScheduler(
	otpRepo account.OTPRepository,
	stateTokenRepo account.StateTokenRepository,
	retention time.Duration,
	interval time.Duration,
	logger logger.Interface,
) *CleanupScheduler {
	if retention <= 0 {
		retention = 24 * time.Hour
	}
	if interval <= 0 {
		interval = time.Hour
	}
	return &CleanupScheduler{
		otpRepo:        otpRepo,
		stateTokenRepo: stateTokenRepo,
		retention:      retention,
		interval:       interval,
		logger:         logger,
		stopChan:       make(chan struct{}),
	}
}

// Start starts the scheduler.
func (s *CleanupScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting cleanup scheduler",
		"interval", s.interval,
		"retention", s.retention)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

// Stop stops the scheduler gracefully.
func (s *CleanupScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("cleanup scheduler stopped")
	})
}

func (s *CleanupScheduler) runLoop(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *CleanupScheduler) sweep(ctx context.Context) {
	start := time.Now()

	otpCount, err := s.otpRepo.DeleteExpiredBefore(ctx, time.Now().UTC().Add(-s.retention))
	if err != nil {
		s.logger.Errorw("failed to sweep expired passcodes", "error", err)
	}

	tokenCount, err := s.stateTokenRepo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Errorw("failed to sweep state tokens", "error", err)
	}

	s.logger.Debugw("cleanup sweep completed",
		"otp_deleted", otpCount,
		"state_tokens_deleted", tokenCount,
		"duration", time.Since(start))
}
