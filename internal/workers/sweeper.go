// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/store"
)

// Expired rows are already unusable (every lookup checks expiry), so the
// sweeper is pure housekeeping and its cadence is not correctness-critical.
type expiredRecordsSweeper struct {
	codes    store.TwoFactorRepository
	sessions store.SessionRepository
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewExpiredRecordsSweeper creates a sweeper that deletes expired one-time
// codes and dead sessions on a ticker. The sweeper is idle until Start is
// called. A non-positive interval defaults to 10 minutes.
func NewExpiredRecordsSweeper(
	codes store.TwoFactorRepository,
	sessions store.SessionRepository,
	interval time.Duration,
	logger *logger.Logger,
) Worker {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &expiredRecordsSweeper{
		codes:    codes,
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Start implements Worker. It stops any previously running sweep, then
// launches a background goroutine that purges expired records every interval.
// The goroutine exits when ctx is cancelled or Stop is called.
func (s *expiredRecordsSweeper) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	sweepCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-t.C:
				s.sweep(sweepCtx)
			}
		}
	}()
}

// Stop implements Worker. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the sweeper
// is not running.
func (s *expiredRecordsSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *expiredRecordsSweeper) sweep(ctx context.Context) {
	now := time.Now()

	deletedCodes, err := s.codes.DeleteExpiredCodes(ctx, now)
	if err != nil {
		s.logger.Err(err).Msg("sweeping expired one-time codes failed")
	}

	deletedSessions, err := s.sessions.DeleteExpiredSessions(ctx, now)
	if err != nil {
		s.logger.Err(err).Msg("sweeping expired sessions failed")
	}

	if deletedCodes > 0 || deletedSessions > 0 {
		s.logger.Info().
			Int64("codes", deletedCodes).
			Int64("sessions", deletedSessions).
			Msg("expired records swept")
	}
}
