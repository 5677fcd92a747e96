//go:build integration
// +build integration

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/unhooked-app/craving-intervention/pkg/profile"
)

// This is a manual integration test for Redis operations
// Run this with: go run test_redis_integration.go
// Requires: Redis running on localhost:6379

func main() {
	logrus.SetLevel(logrus.DebugLevel)
	logrus.Infof("Starting Redis integration test...")

	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer client.Close()

	store := profile.NewRedisStore(client, profile.RedisStoreConfig{})

	testUserID := fmt.Sprintf("test-user-%d", time.Now().Unix())
	logrus.Infof("Testing with user ID: %s", testUserID)

	// Test 1: Get timer for new user
	logrus.Infof("\n=== Test 1: Get timer for new user ===")
	state, err := store.GetTimer(ctx, testUserID)
	if err != nil {
		logrus.Fatalf("Failed to get timer: %v", err)
	}
	logrus.Infof("New user timer: running=%v hasStart=%v", state.IsRunning, state.HasStart())

	// Test 2: Start and read back a timer
	logrus.Infof("\n=== Test 2: Persist a running timer ===")
	now := time.Now()
	if err := store.SetTimer(ctx, testUserID, &profile.TimerState{
		StartTime:   &now,
		IsRunning:   true,
		LastUpdated: now,
	}); err != nil {
		logrus.Fatalf("Failed to set timer: %v", err)
	}
	state, err = store.GetTimer(ctx, testUserID)
	if err != nil {
		logrus.Fatalf("Failed to read timer back: %v", err)
	}
	logrus.Infof("Read back: running=%v start=%v", state.IsRunning, state.StartTime)

	// Test 3: Blocked-app list round trip
	logrus.Infof("\n=== Test 3: Blocked apps round trip ===")
	apps := []string{"com.example.doom", "com.example.scroll"}
	if err := store.SetBlockedApps(ctx, testUserID, apps); err != nil {
		logrus.Fatalf("Failed to set blocked apps: %v", err)
	}
	got, err := store.GetBlockedApps(ctx, testUserID)
	if err != nil {
		logrus.Fatalf("Failed to get blocked apps: %v", err)
	}
	logrus.Infof("Blocked apps: %v", got)

	// Test 4: Atomic overcome counter
	logrus.Infof("\n=== Test 4: Overcome counter ===")
	for i := 0; i < 3; i++ {
		count, err := store.IncrementOvercome(ctx, testUserID)
		if err != nil {
			logrus.Fatalf("Failed to increment overcome: %v", err)
		}
		logrus.Infof("Overcome count: %d", count)
	}

	// Test 5: Append and list binge-free periods
	logrus.Infof("\n=== Test 5: Binge-free periods ===")
	start := now.Add(-90 * time.Second)
	period := &profile.BingeFreePeriod{
		ID:             fmt.Sprintf("period-%d", time.Now().UnixNano()),
		StartTime:      start,
		EndTime:        now,
		DurationMillis: now.UnixMilli() - start.UnixMilli(),
		CreatedAt:      now,
	}
	if err := store.AppendPeriod(ctx, testUserID, period); err != nil {
		logrus.Fatalf("Failed to append period: %v", err)
	}
	periods, err := store.ListPeriods(ctx, testUserID, 10)
	if err != nil {
		logrus.Fatalf("Failed to list periods: %v", err)
	}
	for _, p := range periods {
		logrus.Infof("Period %s: %v -> %v (%dms)", p.ID, p.StartTime, p.EndTime, p.DurationMillis)
	}

	logrus.Infof("\nAll Redis integration tests passed")
}
