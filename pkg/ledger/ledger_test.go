package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"github.com/unhooked-app/craving-intervention/pkg/profile"
	"github.com/unhooked-app/craving-intervention/pkg/timer"
)

// fakeClock is a mutable time source shared between the timer and the ledger
// so derived durations are deterministic.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func setupTest(t *testing.T) (*Service, *timer.Service, *profile.RedisStore, *fakeClock, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	clock := newFakeClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	store := profile.NewRedisStore(client, profile.RedisStoreConfig{})
	timers := timer.NewService(store, timer.WithClock(clock.Now))
	ledger := NewService(store, timers, WithClock(clock.Now))

	return ledger, timers, store, clock, mr
}

func TestRecordRelapse_ClosesPeriodAndResetsTimer(t *testing.T) {
	ledger, timers, store, clock, mr := setupTest(t)
	defer mr.Close()
	defer timers.Shutdown()

	ctx := context.Background()
	userID := "user-1"

	if err := timers.Start(ctx, userID); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	start := clock.Now()
	clock.Advance(90 * time.Second)

	period, err := ledger.RecordRelapse(ctx, userID)
	if err != nil {
		t.Fatalf("RecordRelapse() error = %v", err)
	}
	if period == nil {
		t.Fatal("RecordRelapse() returned no period for a running timer")
	}

	if !period.StartTime.Equal(start) {
		t.Errorf("period StartTime = %v, expected %v", period.StartTime, start)
	}
	if !period.EndTime.Equal(clock.Now()) {
		t.Errorf("period EndTime = %v, expected %v", period.EndTime, clock.Now())
	}
	if period.DurationMillis != 90_000 {
		t.Errorf("period DurationMillis = %d, expected 90000", period.DurationMillis)
	}
	if period.ID == "" {
		t.Error("period must have an ID")
	}

	// The duration must equal the difference of the persisted instants.
	if period.DurationMillis != period.EndTime.UnixMilli()-period.StartTime.UnixMilli() {
		t.Errorf("duration %d does not match end-start (%d)",
			period.DurationMillis, period.EndTime.UnixMilli()-period.StartTime.UnixMilli())
	}

	// The timer must be fully reset afterwards.
	state, err := store.GetTimer(ctx, userID)
	if err != nil {
		t.Fatalf("GetTimer() error = %v", err)
	}
	if state.IsRunning || state.HasStart() {
		t.Error("timer must be reset after a relapse")
	}

	// And the period is durably in the ledger.
	periods, err := ledger.Latest(ctx, userID, 10)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if len(periods) != 1 || periods[0].ID != period.ID {
		t.Errorf("Latest() = %v, expected the recorded period", periods)
	}
}

func TestRecordRelapse_WithoutStartRecordsNothing(t *testing.T) {
	ledger, timers, store, _, mr := setupTest(t)
	defer mr.Close()
	defer timers.Shutdown()

	ctx := context.Background()
	userID := "user-2"

	period, err := ledger.RecordRelapse(ctx, userID)
	if err != nil {
		t.Fatalf("RecordRelapse() error = %v", err)
	}
	if period != nil {
		t.Errorf("RecordRelapse() without a timer returned period %v", period)
	}

	periods, err := ledger.Latest(ctx, userID, 10)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if len(periods) != 0 {
		t.Errorf("ledger has %d periods, expected 0", len(periods))
	}

	state, err := store.GetTimer(ctx, userID)
	if err != nil {
		t.Fatalf("GetTimer() error = %v", err)
	}
	if state.IsRunning {
		t.Error("timer must be stopped even when there was nothing to record")
	}
}

func TestRecordRelapse_InvertedClockSkipsAppend(t *testing.T) {
	ledger, timers, store, clock, mr := setupTest(t)
	defer mr.Close()
	defer timers.Shutdown()

	ctx := context.Background()
	userID := "user-3"

	// Another device persisted a start instant ahead of this node's clock.
	future := clock.Now().Add(time.Hour)
	if err := store.SetTimer(ctx, userID, &profile.TimerState{
		StartTime:   &future,
		IsRunning:   true,
		LastUpdated: future,
	}); err != nil {
		t.Fatalf("SetTimer() error = %v", err)
	}

	period, err := ledger.RecordRelapse(ctx, userID)
	if err != nil {
		t.Fatalf("RecordRelapse() error = %v", err)
	}
	if period != nil {
		t.Error("inverted period must not be recorded")
	}

	periods, _ := ledger.Latest(ctx, userID, 10)
	if len(periods) != 0 {
		t.Errorf("ledger has %d periods, expected 0", len(periods))
	}

	// The timer is still reset so the account is not stuck.
	state, _ := store.GetTimer(ctx, userID)
	if state.IsRunning || state.HasStart() {
		t.Error("timer must be reset after an inverted-clock relapse")
	}
}

func TestRecordOvercome_LeavesTimerRunning(t *testing.T) {
	ledger, timers, store, clock, mr := setupTest(t)
	defer mr.Close()
	defer timers.Shutdown()

	ctx := context.Background()
	userID := "user-4"

	if err := timers.Start(ctx, userID); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	start := clock.Now()
	clock.Advance(time.Minute)

	count, err := ledger.RecordOvercome(ctx, userID)
	if err != nil {
		t.Fatalf("RecordOvercome() error = %v", err)
	}
	if count != 1 {
		t.Errorf("overcome count = %d, expected 1", count)
	}

	count, err = ledger.RecordOvercome(ctx, userID)
	if err != nil {
		t.Fatalf("second RecordOvercome() error = %v", err)
	}
	if count != 2 {
		t.Errorf("overcome count = %d, expected 2", count)
	}

	// The timer keeps running with its original start instant, and no
	// period is appended.
	state, err := store.GetTimer(ctx, userID)
	if err != nil {
		t.Fatalf("GetTimer() error = %v", err)
	}
	if !state.IsRunning {
		t.Error("overcome must leave the timer running")
	}
	if !state.StartTime.Equal(start) {
		t.Errorf("overcome moved the start instant: %v -> %v", start, state.StartTime)
	}

	periods, _ := ledger.Latest(ctx, userID, 10)
	if len(periods) != 0 {
		t.Errorf("overcome appended %d periods, expected 0", len(periods))
	}
}

func TestStats_SummarizesPeriods(t *testing.T) {
	ledger, timers, _, clock, mr := setupTest(t)
	defer mr.Close()
	defer timers.Shutdown()

	ctx := context.Background()
	userID := "user-5"

	durations := []time.Duration{30 * time.Second, 2 * time.Minute, time.Minute}
	for _, d := range durations {
		if err := timers.Start(ctx, userID); err != nil {
			t.Fatalf("Start() error = %v", err)
		}
		clock.Advance(d)
		if _, err := ledger.RecordRelapse(ctx, userID); err != nil {
			t.Fatalf("RecordRelapse() error = %v", err)
		}
	}
	if _, err := ledger.RecordOvercome(ctx, userID); err != nil {
		t.Fatalf("RecordOvercome() error = %v", err)
	}

	stats, err := ledger.Stats(ctx, userID, 10)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if stats.PeriodCount != 3 {
		t.Errorf("PeriodCount = %d, expected 3", stats.PeriodCount)
	}
	if stats.LongestMillis != 120_000 {
		t.Errorf("LongestMillis = %d, expected 120000", stats.LongestMillis)
	}
	if stats.TotalResistedMillis != 210_000 {
		t.Errorf("TotalResistedMillis = %d, expected 210000", stats.TotalResistedMillis)
	}
	if stats.OvercomeCount != 1 {
		t.Errorf("OvercomeCount = %d, expected 1", stats.OvercomeCount)
	}
}

func TestLatest_NewestFirst(t *testing.T) {
	ledger, timers, _, clock, mr := setupTest(t)
	defer mr.Close()
	defer timers.Shutdown()

	ctx := context.Background()
	userID := "user-6"

	for i := 0; i < 3; i++ {
		if err := timers.Start(ctx, userID); err != nil {
			t.Fatalf("Start() error = %v", err)
		}
		clock.Advance(time.Minute)
		if _, err := ledger.RecordRelapse(ctx, userID); err != nil {
			t.Fatalf("RecordRelapse() error = %v", err)
		}
	}

	periods, err := ledger.Latest(ctx, userID, 2)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if len(periods) != 2 {
		t.Fatalf("Latest(2) returned %d periods", len(periods))
	}
	if !periods[0].CreatedAt.After(periods[1].CreatedAt) {
		t.Errorf("periods not newest-first: %v then %v", periods[0].CreatedAt, periods[1].CreatedAt)
	}
}
