package blocklist

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	bolt "go.etcd.io/bbolt"

	"github.com/unhooked-app/craving-intervention/pkg/profile"
)

func setupTest(t *testing.T) (*Store, *profile.RedisStore, *bolt.DB, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	remote := profile.NewRedisStore(client, profile.RedisStoreConfig{})

	db, err := bolt.Open(filepath.Join(t.TempDir(), "blocklist.db"), 0o600, nil)
	if err != nil {
		t.Fatalf("failed to open bbolt: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := New(remote, db)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return store, remote, db, mr
}

func TestSet_WritesRemoteAndMirror(t *testing.T) {
	store, remote, _, _ := setupTest(t)
	ctx := context.Background()
	userID := "user-1"

	if err := store.Set(ctx, userID, []string{"com.example.doom", "com.example.scroll"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// The remote store is the source of truth and must hold the list.
	remoteApps, err := remote.GetBlockedApps(ctx, userID)
	if err != nil {
		t.Fatalf("GetBlockedApps() error = %v", err)
	}
	if len(remoteApps) != 2 {
		t.Errorf("remote holds %d apps, expected 2", len(remoteApps))
	}

	// The mirror answers membership without touching the remote.
	if !store.Contains(userID, "com.example.doom") {
		t.Error("Contains() = false for a blocked app")
	}
	if store.Contains(userID, "com.example.harmless") {
		t.Error("Contains() = true for an unblocked app")
	}
}

func TestGet_FallsBackToRemote(t *testing.T) {
	store, remote, _, _ := setupTest(t)
	ctx := context.Background()
	userID := "user-2"

	// List written remotely by another node; this mirror has never seen it.
	if err := remote.SetBlockedApps(ctx, userID, []string{"com.example.doom"}); err != nil {
		t.Fatalf("SetBlockedApps() error = %v", err)
	}

	apps, err := store.Get(ctx, userID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(apps) != 1 || apps[0] != "com.example.doom" {
		t.Errorf("Get() = %v, expected [com.example.doom]", apps)
	}

	// After the fallback the mirror serves membership locally.
	if !store.Contains(userID, "com.example.doom") {
		t.Error("Contains() = false after remote fallback populated the mirror")
	}
}

func TestGet_FallsBackToRemoteAfterEventPathRead(t *testing.T) {
	store, remote, _, _ := setupTest(t)
	ctx := context.Background()
	userID := "user-6"

	// List exists remotely but the local file has never seen this user
	// (reinstall or a fresh node).
	if err := remote.SetBlockedApps(ctx, userID, []string{"com.example.doom"}); err != nil {
		t.Fatalf("SetBlockedApps() error = %v", err)
	}

	// An event-path read arrives before any settings read. It must answer
	// from local state only, so the app is not blocked yet.
	if store.Contains(userID, "com.example.doom") {
		t.Error("Contains() = true before the mirror was populated")
	}
	if store.IsActive(userID) {
		t.Error("IsActive() = true before the mirror was populated")
	}

	// The first Get must still reach the remote store; the event-path miss
	// above must not have been cached as an empty list.
	apps, err := store.Get(ctx, userID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(apps) != 1 || apps[0] != "com.example.doom" {
		t.Errorf("Get() = %v, expected [com.example.doom] from the remote store", apps)
	}

	// And once mirrored, the event path sees the list.
	if !store.Contains(userID, "com.example.doom") {
		t.Error("Contains() = false after Get populated the mirror")
	}
}

func TestContains_StaleUntilRefresh(t *testing.T) {
	store, remote, _, _ := setupTest(t)
	ctx := context.Background()
	userID := "user-3"

	if err := store.Set(ctx, userID, []string{"com.example.doom"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// Remote changes made elsewhere are not visible until Refresh; the
	// mirror never reads the network on the event path.
	if err := remote.SetBlockedApps(ctx, userID, []string{"com.example.scroll"}); err != nil {
		t.Fatalf("SetBlockedApps() error = %v", err)
	}
	if !store.Contains(userID, "com.example.doom") {
		t.Error("mirror refreshed implicitly; event-path reads must stay local")
	}

	if err := store.Refresh(ctx, userID); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if store.Contains(userID, "com.example.doom") {
		t.Error("Contains() = true for an app removed remotely after Refresh")
	}
	if !store.Contains(userID, "com.example.scroll") {
		t.Error("Contains() = false for an app added remotely after Refresh")
	}
}

func TestSetActive_Durable(t *testing.T) {
	store, remote, db, _ := setupTest(t)
	userID := "user-4"

	if store.IsActive(userID) {
		t.Error("enforcement must default to idle")
	}

	if err := store.SetActive(userID, true); err != nil {
		t.Fatalf("SetActive() error = %v", err)
	}
	if !store.IsActive(userID) {
		t.Error("IsActive() = false after SetActive(true)")
	}

	// A fresh store over the same file sees the flag: the write completed
	// durably before SetActive returned.
	reopened, err := New(remote, db)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !reopened.IsActive(userID) {
		t.Error("enforcement flag not durable across store instances")
	}

	if err := store.SetActive(userID, false); err != nil {
		t.Fatalf("SetActive(false) error = %v", err)
	}
	if store.IsActive(userID) {
		t.Error("IsActive() = true after SetActive(false)")
	}
}

func TestMirror_SurvivesRestart(t *testing.T) {
	store, remote, db, _ := setupTest(t)
	ctx := context.Background()
	userID := "user-5"

	if err := store.Set(ctx, userID, []string{"com.example.doom"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.SetActive(userID, true); err != nil {
		t.Fatalf("SetActive() error = %v", err)
	}

	// Simulate a process restart: a new store over the same file, with the
	// remote unreachable (flushed), must still answer from the file.
	if err := remote.SetBlockedApps(ctx, userID, nil); err != nil {
		t.Fatalf("SetBlockedApps() error = %v", err)
	}

	restarted, err := New(remote, db)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !restarted.Contains(userID, "com.example.doom") {
		t.Error("block list not served from the local file after restart")
	}
	if !restarted.IsActive(userID) {
		t.Error("enforcement flag not served from the local file after restart")
	}
}

func TestContains_UnknownUser(t *testing.T) {
	store, _, _, _ := setupTest(t)

	if store.Contains("nobody", "com.example.doom") {
		t.Error("Contains() = true for a user with no block list")
	}
	if store.IsActive("nobody") {
		t.Error("IsActive() = true for a user with no enforcement state")
	}
}
