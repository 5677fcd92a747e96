package profile

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, mr
}

func TestGetTimer_NewUser(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()

	store := NewRedisStore(client, RedisStoreConfig{})
	ctx := context.Background()

	state, err := store.GetTimer(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetTimer() error = %v", err)
	}

	if state.IsRunning {
		t.Error("new user timer should not be running")
	}
	if state.HasStart() {
		t.Error("new user timer should have no start instant")
	}
}

func TestSetTimer_RoundTrip(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()

	store := NewRedisStore(client, RedisStoreConfig{})
	ctx := context.Background()
	userID := "user-2"

	start := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	in := &TimerState{
		StartTime:   &start,
		IsRunning:   true,
		LastUpdated: start,
	}
	if err := store.SetTimer(ctx, userID, in); err != nil {
		t.Fatalf("SetTimer() error = %v", err)
	}

	out, err := store.GetTimer(ctx, userID)
	if err != nil {
		t.Fatalf("GetTimer() error = %v", err)
	}

	if !out.IsRunning {
		t.Error("timer should be running after SetTimer")
	}
	if !out.HasStart() {
		t.Fatal("timer should have a start instant after SetTimer")
	}
	if !out.StartTime.Equal(start) {
		t.Errorf("StartTime = %v, expected %v", out.StartTime, start)
	}
}

func TestSetTimer_AppliesTTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()

	store := NewRedisStore(client, RedisStoreConfig{})
	ctx := context.Background()
	userID := "user-ttl"

	now := time.Now()
	if err := store.SetTimer(ctx, userID, &TimerState{StartTime: &now, IsRunning: true, LastUpdated: now}); err != nil {
		t.Fatalf("SetTimer() error = %v", err)
	}

	ttl := mr.TTL(makeTimerKey(userID))
	if ttl <= 0 {
		t.Errorf("timer key TTL = %v, expected a positive expiry", ttl)
	}
}

func TestSetBlockedApps_ReplacesWholesale(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()

	store := NewRedisStore(client, RedisStoreConfig{})
	ctx := context.Background()
	userID := "user-3"

	if err := store.SetBlockedApps(ctx, userID, []string{"com.example.doom", "com.example.scroll"}); err != nil {
		t.Fatalf("SetBlockedApps() error = %v", err)
	}
	if err := store.SetBlockedApps(ctx, userID, []string{"com.example.other"}); err != nil {
		t.Fatalf("SetBlockedApps() error = %v", err)
	}

	apps, err := store.GetBlockedApps(ctx, userID)
	if err != nil {
		t.Fatalf("GetBlockedApps() error = %v", err)
	}

	if len(apps) != 1 || apps[0] != "com.example.other" {
		t.Errorf("GetBlockedApps() = %v, expected [com.example.other]", apps)
	}
}

func TestSetBlockedApps_EmptyListClears(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()

	store := NewRedisStore(client, RedisStoreConfig{})
	ctx := context.Background()
	userID := "user-4"

	if err := store.SetBlockedApps(ctx, userID, []string{"com.example.doom"}); err != nil {
		t.Fatalf("SetBlockedApps() error = %v", err)
	}
	if err := store.SetBlockedApps(ctx, userID, nil); err != nil {
		t.Fatalf("SetBlockedApps(nil) error = %v", err)
	}

	apps, err := store.GetBlockedApps(ctx, userID)
	if err != nil {
		t.Fatalf("GetBlockedApps() error = %v", err)
	}
	if len(apps) != 0 {
		t.Errorf("GetBlockedApps() = %v, expected empty", apps)
	}
}

func TestListPeriods_NewestFirst(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()

	store := NewRedisStore(client, RedisStoreConfig{})
	ctx := context.Background()
	userID := "user-5"

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		start := base.Add(time.Duration(i) * time.Hour)
		end := start.Add(30 * time.Minute)
		period := &BingeFreePeriod{
			ID:             string(rune('a' + i)),
			StartTime:      start,
			EndTime:        end,
			DurationMillis: end.UnixMilli() - start.UnixMilli(),
			CreatedAt:      end,
		}
		if err := store.AppendPeriod(ctx, userID, period); err != nil {
			t.Fatalf("AppendPeriod() error = %v", err)
		}
	}

	periods, err := store.ListPeriods(ctx, userID, 10)
	if err != nil {
		t.Fatalf("ListPeriods() error = %v", err)
	}

	if len(periods) != 3 {
		t.Fatalf("ListPeriods() returned %d periods, expected 3", len(periods))
	}
	for i := 1; i < len(periods); i++ {
		if periods[i].CreatedAt.After(periods[i-1].CreatedAt) {
			t.Errorf("periods out of order at %d: %v after %v", i, periods[i].CreatedAt, periods[i-1].CreatedAt)
		}
	}
}

func TestListPeriods_Limit(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()

	store := NewRedisStore(client, RedisStoreConfig{})
	ctx := context.Background()
	userID := "user-6"

	now := time.Now()
	for i := 0; i < 5; i++ {
		period := &BingeFreePeriod{
			ID:             string(rune('a' + i)),
			StartTime:      now,
			EndTime:        now.Add(time.Minute),
			DurationMillis: 60_000,
			CreatedAt:      now,
		}
		if err := store.AppendPeriod(ctx, userID, period); err != nil {
			t.Fatalf("AppendPeriod() error = %v", err)
		}
	}

	periods, err := store.ListPeriods(ctx, userID, 2)
	if err != nil {
		t.Fatalf("ListPeriods() error = %v", err)
	}
	if len(periods) != 2 {
		t.Errorf("ListPeriods(limit=2) returned %d periods", len(periods))
	}
}

func TestIncrementOvercome_Atomic(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()

	store := NewRedisStore(client, RedisStoreConfig{})
	ctx := context.Background()
	userID := "user-7"

	const workers = 10
	const perWorker = 20

	var wg sync.WaitGroup
	results := make([][]int64, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				count, err := store.IncrementOvercome(ctx, userID)
				if err != nil {
					t.Errorf("IncrementOvercome() error = %v", err)
					return
				}
				results[w] = append(results[w], count)
			}
		}(w)
	}
	wg.Wait()

	count, err := store.GetOvercomeCount(ctx, userID)
	if err != nil {
		t.Fatalf("GetOvercomeCount() error = %v", err)
	}
	if count != workers*perWorker {
		t.Errorf("overcome count = %d, expected %d (lost updates)", count, workers*perWorker)
	}

	// Every increment must have observed a distinct counter value.
	seen := make([]int64, 0, workers*perWorker)
	for _, r := range results {
		seen = append(seen, r...)
	}
	sort.Slice(seen, func(i, j int) bool { return seen[i] < seen[j] })
	for i, v := range seen {
		if v != int64(i+1) {
			t.Fatalf("increment results not a permutation of 1..%d: position %d holds %d", workers*perWorker, i, v)
		}
	}
}

func TestGetOvercomeCount_NewUser(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()

	store := NewRedisStore(client, RedisStoreConfig{})

	count, err := store.GetOvercomeCount(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetOvercomeCount() error = %v", err)
	}
	if count != 0 {
		t.Errorf("new user overcome count = %d, expected 0", count)
	}
}
