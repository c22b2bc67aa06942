package workers

import (
	"context"

	"github.com/MKhiriev/go-member-portal/internal/config"
	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/store"
)

// Workers aggregates every background worker of the application.
type Workers struct {
	workers []Worker
}

// NewWorkers builds the worker set: currently a single sweeper that purges
// expired one-time codes and dead sessions.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewExpiredRecordsSweeper(
				storages.TwoFactorRepository,
				storages.SessionRepository,
				cfg.SweepInterval,
				logger,
			),
		},
	}
}

// Start launches all workers. Each worker returns immediately and keeps
// running in the background until ctx is cancelled or Stop is called.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops all workers and blocks until every one of them has exited.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
