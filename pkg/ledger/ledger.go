// Package ledger keeps the append-only history of completed binge-free
// periods and the overcome counter, both derived from session-timer
// transitions: a relapse closes the current period, an overcome only bumps
// the counter and leaves the timer running.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/unhooked-app/craving-intervention/pkg/metrics"
	"github.com/unhooked-app/craving-intervention/pkg/profile"
)

// TimerService is the slice of the session timer the ledger drives.
type TimerService interface {
	Snapshot(ctx context.Context, userID string) (*profile.TimerState, int64, error)
	Stop(ctx context.Context, userID string) error
	Reset(ctx context.Context, userID string) error
}

// Service records timer transitions into the durable ledger.
type Service struct {
	store  profile.LedgerStore
	timers TimerService
	now    func() time.Time
	newID  func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a ledger service.
func NewService(store profile.LedgerStore, timers TimerService, opts ...Option) *Service {
	s := &Service{
		store:  store,
		timers: timers,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordRelapse closes the current resistance attempt: it appends a
// binge-free period covering startTime..now and resets the timer. Without a
// start instant there is nothing to record; the relapse is logged only and
// the timer is still stopped. The period is appended before the timer is
// reset so a persistence failure never loses the period silently.
func (s *Service) RecordRelapse(ctx context.Context, userID string) (*profile.BingeFreePeriod, error) {
	state, _, err := s.timers.Snapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("record relapse: %w", err)
	}

	if !state.HasStart() {
		logrus.Warnf("relapse reported for user %s without a timer in progress, nothing to record", userID)
		if err := s.timers.Stop(ctx, userID); err != nil {
			logrus.Errorf("failed to stop timer for user %s after empty relapse: %v", userID, err)
		}
		return nil, nil
	}

	start := *state.StartTime
	end := s.now()
	if !start.Before(end) {
		// Clock went backwards between devices; an inverted period would
		// violate the ledger invariant, so drop it but still reset.
		logrus.Warnf("relapse for user %s has start %v >= end %v, skipping ledger append", userID, start, end)
		if err := s.timers.Reset(ctx, userID); err != nil {
			return nil, fmt.Errorf("record relapse: timer reset failed: %w", err)
		}
		return nil, nil
	}

	period := &profile.BingeFreePeriod{
		ID:             s.newID(),
		StartTime:      start,
		EndTime:        end,
		DurationMillis: end.UnixMilli() - start.UnixMilli(),
		CreatedAt:      end,
	}

	if err := s.store.AppendPeriod(ctx, userID, period); err != nil {
		return nil, fmt.Errorf("record relapse: %w", err)
	}

	if err := s.timers.Reset(ctx, userID); err != nil {
		return period, fmt.Errorf("record relapse: period recorded but timer reset failed: %w", err)
	}

	metrics.RelapsesTotal.Inc()
	logrus.Infof("recorded relapse for user %s: resisted %dms", userID, period.DurationMillis)
	return period, nil
}

// RecordOvercome bumps the overcome counter by exactly one via the store's
// atomic increment. The timer keeps running and no period is appended.
func (s *Service) RecordOvercome(ctx context.Context, userID string) (int64, error) {
	count, err := s.store.IncrementOvercome(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("record overcome: %w", err)
	}

	metrics.OvercomesTotal.Inc()
	logrus.Infof("user %s overcame a craving (total %d)", userID, count)
	return count, nil
}

// Latest returns the n most recent periods, descending by creation time.
func (s *Service) Latest(ctx context.Context, userID string, n int) ([]*profile.BingeFreePeriod, error) {
	periods, err := s.store.ListPeriods(ctx, userID, n)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	return periods, nil
}

// Stats summarizes recent periods for the streak display.
type Stats struct {
	PeriodCount         int
	LongestMillis       int64
	TotalResistedMillis int64
	OvercomeCount       int64
}

// Stats computes streak statistics over the sample most recent periods.
func (s *Service) Stats(ctx context.Context, userID string, sample int) (*Stats, error) {
	periods, err := s.store.ListPeriods(ctx, userID, sample)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	overcomes, err := s.store.GetOvercomeCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	stats := &Stats{
		PeriodCount:   len(periods),
		OvercomeCount: overcomes,
	}
	for _, p := range periods {
		stats.TotalResistedMillis += p.DurationMillis
		if p.DurationMillis > stats.LongestMillis {
			stats.LongestMillis = p.DurationMillis
		}
	}
	return stats, nil
}
