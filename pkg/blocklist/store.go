// Package blocklist mirrors the remote blocked-app list and the enforcement
// flag into a fast local store. The enforcement monitor consults this store
// on every foreground-change event, so reads must never touch the network:
// lookups are served from memory, backed by a bbolt file that survives
// process restarts (but not a reinstall, which deletes the file).
//
// Write policy is single-writer, multiple-reader: the blocked-app list is
// written only by the settings flow, the enforcement flag only by the
// activation controller. The monitor never writes.
package blocklist

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"

	"github.com/unhooked-app/craving-intervention/pkg/profile"
)

var (
	bucketBlockedApps = []byte("blocked_apps")
	bucketEnforcement = []byte("enforcement")
)

type snapshot struct {
	apps   map[string]struct{}
	active bool
}

// Store is the local mirror of per-user blocked apps and enforcement state.
type Store struct {
	remote profile.BlockedAppStore
	db     *bolt.DB

	mu    sync.RWMutex
	users map[string]snapshot
}

// New opens the local mirror on top of an already-opened bbolt database and
// the remote blocked-app store.
func New(remote profile.BlockedAppStore, db *bolt.DB) (*Store, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketBlockedApps); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(bucketEnforcement); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create blocklist buckets: %w", err)
	}

	return &Store{
		remote: remote,
		db:     db,
		users:  make(map[string]snapshot),
	}, nil
}

// Get returns the mirrored blocked-app list for a user. A user not yet in
// the mirror is loaded from the local file, then from the remote store.
func (s *Store) Get(ctx context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	snap, ok := s.users[userID]
	s.mu.RUnlock()

	if !ok {
		var err error
		if snap, err = s.load(ctx, userID); err != nil {
			return nil, err
		}
	}

	appIDs := make([]string, 0, len(snap.apps))
	for id := range snap.apps {
		appIDs = append(appIDs, id)
	}
	return appIDs, nil
}

// Set replaces the blocked-app list wholesale. The remote store is written
// first; the local mirror is only updated after the remote write succeeds so
// the mirror never diverges ahead of the source of truth.
func (s *Store) Set(ctx context.Context, userID string, appIDs []string) error {
	if err := s.remote.SetBlockedApps(ctx, userID, appIDs); err != nil {
		return fmt.Errorf("remote blocked-app write failed: %w", err)
	}

	return s.storeLocal(userID, appIDs, nil)
}

// Contains reports whether appID is in the user's block set. It is served
// entirely from the local mirror and is safe to call from the monitor's
// event callback.
func (s *Store) Contains(userID, appID string) bool {
	snap, ok := s.snapshot(userID)
	if !ok {
		return false
	}
	_, blocked := snap.apps[appID]
	return blocked
}

// IsActive reports whether enforcement is currently active for the user.
func (s *Store) IsActive(userID string) bool {
	snap, ok := s.snapshot(userID)
	return ok && snap.active
}

// SetActive flips the enforcement flag. The flag is written to the durable
// local file before the in-memory view is updated, so the write has
// completed durably by the time this returns.
func (s *Store) SetActive(userID string, active bool) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		val := []byte{0}
		if active {
			val[0] = 1
		}
		return tx.Bucket(bucketEnforcement).Put([]byte(userID), val)
	})
	if err != nil {
		return fmt.Errorf("failed to persist enforcement flag: %w", err)
	}

	s.mu.Lock()
	snap := s.users[userID]
	if snap.apps == nil {
		snap.apps = make(map[string]struct{})
	}
	snap.active = active
	s.users[userID] = snap
	s.mu.Unlock()

	logrus.Infof("enforcement flag for user %s set to %v", userID, active)
	return nil
}

// Refresh re-mirrors the blocked-app list from the remote store. Called on
// login and whenever the settings flow may have changed the list elsewhere.
func (s *Store) Refresh(ctx context.Context, userID string) error {
	appIDs, err := s.remote.GetBlockedApps(ctx, userID)
	if err != nil {
		return fmt.Errorf("remote blocked-app read failed: %w", err)
	}

	active := s.IsActive(userID)
	return s.storeLocal(userID, appIDs, &active)
}

// snapshot returns the in-memory view for a user, falling back to the local
// file for users not yet loaded (e.g. first event after a restart).
func (s *Store) snapshot(userID string) (snapshot, bool) {
	s.mu.RLock()
	snap, ok := s.users[userID]
	s.mu.RUnlock()
	if ok {
		return snap, true
	}

	snap, err := s.loadLocal(userID)
	if err != nil {
		logrus.Warnf("failed to load local blocklist mirror for user %s: %v", userID, err)
		return snapshot{}, false
	}

	// A user absent from the local file is served but never cached here:
	// caching the miss would make the next Get find an empty in-memory entry
	// and skip its remote fallback.
	if snap.apps == nil {
		return snap, true
	}

	s.mu.Lock()
	// Another goroutine may have loaded or written in the meantime; its view
	// is at least as fresh as ours.
	if existing, ok := s.users[userID]; ok {
		snap = existing
	} else {
		s.users[userID] = snap
	}
	s.mu.Unlock()

	return snap, true
}

// load populates the mirror for a user, preferring the local file and
// falling back to the remote store when the file has no entry.
func (s *Store) load(ctx context.Context, userID string) (snapshot, error) {
	if snap, err := s.loadLocal(userID); err == nil && snap.apps != nil {
		s.mu.Lock()
		s.users[userID] = snap
		s.mu.Unlock()
		return snap, nil
	}

	if err := s.Refresh(ctx, userID); err != nil {
		return snapshot{}, err
	}

	s.mu.RLock()
	snap := s.users[userID]
	s.mu.RUnlock()
	return snap, nil
}

func (s *Store) loadLocal(userID string) (snapshot, error) {
	snap := snapshot{}

	err := s.db.View(func(tx *bolt.Tx) error {
		if raw := tx.Bucket(bucketBlockedApps).Get([]byte(userID)); raw != nil {
			var appIDs []string
			if err := json.Unmarshal(raw, &appIDs); err != nil {
				return fmt.Errorf("malformed local blocklist entry: %w", err)
			}
			snap.apps = make(map[string]struct{}, len(appIDs))
			for _, id := range appIDs {
				snap.apps[id] = struct{}{}
			}
		}
		if raw := tx.Bucket(bucketEnforcement).Get([]byte(userID)); len(raw) == 1 {
			snap.active = raw[0] == 1
		}
		return nil
	})
	if err != nil {
		return snapshot{}, err
	}

	return snap, nil
}

// storeLocal writes the list to the durable file and the in-memory view.
// When keepActive is nil the current in-memory flag is preserved.
func (s *Store) storeLocal(userID string, appIDs []string, keepActive *bool) error {
	data, err := json.Marshal(appIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal blocked apps: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketBlockedApps).Put([]byte(userID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to persist local blocklist mirror: %w", err)
	}

	apps := make(map[string]struct{}, len(appIDs))
	for _, id := range appIDs {
		apps[id] = struct{}{}
	}

	s.mu.Lock()
	snap := s.users[userID]
	snap.apps = apps
	if keepActive != nil {
		snap.active = *keepActive
	}
	s.users[userID] = snap
	s.mu.Unlock()

	logrus.Debugf("mirrored %d blocked apps for user %s", len(appIDs), userID)
	return nil
}
