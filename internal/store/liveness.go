package store

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ExistenceChecker reports whether a customer id still exists upstream.
// Implementations must fail open: any check failure counts as "exists".
type ExistenceChecker interface {
	CustomerExists(ctx context.Context, customerID string) bool
}

// LivenessSweeper periodically re-validates every cached session against
// the upstream customer table and logs out sessions whose record was
// removed by the staff dashboard.
type LivenessSweeper struct {
	customers *CustomerStore
	checker   ExistenceChecker
	interval  time.Duration
	log       *zap.Logger
}

func NewLivenessSweeper(customers *CustomerStore, checker ExistenceChecker, logger *zap.Logger) *LivenessSweeper {
	return &LivenessSweeper{
		customers: customers,
		checker:   checker,
		interval:  10 * time.Minute,
		log:       logger,
	}
}

// Run blocks until ctx is cancelled. Meant to be launched as a goroutine.
func (s *LivenessSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

func (s *LivenessSweeper) Sweep(ctx context.Context) {
	ids, err := s.customers.ActiveIDs(ctx)
	if err != nil {
		s.log.Warn("liveness sweep: listing sessions failed", zap.Error(err))
		return
	}

	for _, id := range ids {
		if s.checker.CustomerExists(ctx, id) {
			continue
		}

		s.log.Info("customer removed upstream, logging out", zap.String("customer_id", id))
		if err := s.customers.Delete(ctx, id); err != nil {
			s.log.Warn("liveness sweep: logout failed", zap.String("customer_id", id), zap.Error(err))
		}
	}
}
