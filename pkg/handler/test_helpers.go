package handler

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	bolt "go.etcd.io/bbolt"

	"github.com/unhooked-app/craving-intervention/pkg/blocklist"
	"github.com/unhooked-app/craving-intervention/pkg/enforcement"
	"github.com/unhooked-app/craving-intervention/pkg/ledger"
	"github.com/unhooked-app/craving-intervention/pkg/profile"
	"github.com/unhooked-app/craving-intervention/pkg/timer"
)

// testStack is a complete handler stack over miniredis and a throwaway
// bbolt file.
type testStack struct {
	intervention *Intervention
	foreground   *ForegroundActivity
	store        *profile.RedisStore
	timers       *timer.Service
	mr           *miniredis.Miniredis
}

func setupTestStack(t *testing.T) *testStack {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := profile.NewRedisStore(client, profile.RedisStoreConfig{})

	db, err := bolt.Open(filepath.Join(t.TempDir(), "blocklist.db"), 0o600, nil)
	if err != nil {
		t.Fatalf("failed to open bbolt: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	blocklistStore, err := blocklist.New(store, db)
	if err != nil {
		t.Fatalf("failed to init blocklist store: %v", err)
	}

	timers := timer.NewService(store, timer.WithTickInterval(5*time.Millisecond))
	t.Cleanup(timers.Shutdown)

	controller := enforcement.NewController(blocklistStore, timers)
	redirector := enforcement.NewRedisRedirector(client)
	monitor := enforcement.NewMonitor(blocklistStore, redirector, []string{"app.unhooked.android"})
	ledgerSvc := ledger.NewService(store, timers)

	return &testStack{
		intervention: NewIntervention(timers, controller, ledgerSvc, blocklistStore),
		foreground:   NewForegroundActivity(monitor),
		store:        store,
		timers:       timers,
		mr:           mr,
	}
}
