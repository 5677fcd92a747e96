package enforcement

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/unhooked-app/craving-intervention/pkg/profile"
)

type fakeFlagStore struct {
	mu     sync.Mutex
	active map[string]bool
	writes int
	err    error
}

func newFakeFlagStore() *fakeFlagStore {
	return &fakeFlagStore{active: make(map[string]bool)}
}

func (f *fakeFlagStore) IsActive(userID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active[userID]
}

func (f *fakeFlagStore) SetActive(userID string, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.active[userID] = active
	f.writes++
	return nil
}

type fakeTimerReader struct {
	running bool
	err     error
}

func (f *fakeTimerReader) Snapshot(ctx context.Context, userID string) (*profile.TimerState, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	state := &profile.TimerState{IsRunning: f.running, LastUpdated: time.Now()}
	if f.running {
		now := time.Now()
		state.StartTime = &now
	}
	return state, 0, nil
}

func TestActivate_RequiresRunningTimer(t *testing.T) {
	flags := newFakeFlagStore()
	controller := NewController(flags, &fakeTimerReader{running: false})

	err := controller.Activate(context.Background(), "user-1")
	if !errors.Is(err, ErrTimerNotRunning) {
		t.Fatalf("Activate() error = %v, expected ErrTimerNotRunning", err)
	}
	if flags.IsActive("user-1") {
		t.Error("enforcement must stay idle when the timer is not running")
	}
}

func TestActivate_ArmsEnforcement(t *testing.T) {
	flags := newFakeFlagStore()
	controller := NewController(flags, &fakeTimerReader{running: true})

	if err := controller.Activate(context.Background(), "user-1"); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if !flags.IsActive("user-1") {
		t.Error("enforcement should be armed after Activate")
	}
}

func TestActivate_Idempotent(t *testing.T) {
	flags := newFakeFlagStore()
	controller := NewController(flags, &fakeTimerReader{running: true})
	ctx := context.Background()

	if err := controller.Activate(ctx, "user-1"); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if err := controller.Activate(ctx, "user-1"); err != nil {
		t.Fatalf("second Activate() error = %v", err)
	}

	// Nested activation is idempotent, not reference-counted: one
	// deactivation disarms.
	if err := controller.Deactivate(ctx, "user-1"); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}
	if flags.IsActive("user-1") {
		t.Error("a single Deactivate must disarm enforcement regardless of repeat activations")
	}
}

func TestDeactivate_Idempotent(t *testing.T) {
	flags := newFakeFlagStore()
	controller := NewController(flags, &fakeTimerReader{running: true})
	ctx := context.Background()

	if err := controller.Deactivate(ctx, "user-1"); err != nil {
		t.Errorf("Deactivate() on idle state error = %v", err)
	}
	if flags.writes != 0 {
		t.Errorf("Deactivate() on idle state wrote %d times, expected 0", flags.writes)
	}
}

func TestActivate_EmptyUser(t *testing.T) {
	controller := NewController(newFakeFlagStore(), &fakeTimerReader{running: true})

	if err := controller.Activate(context.Background(), ""); err == nil {
		t.Error("Activate(\"\") should fail")
	}
	if err := controller.Deactivate(context.Background(), ""); err == nil {
		t.Error("Deactivate(\"\") should fail")
	}
}

func TestActivate_FlagWriteFailure(t *testing.T) {
	flags := newFakeFlagStore()
	flags.err = errors.New("disk full")
	controller := NewController(flags, &fakeTimerReader{running: true})

	if err := controller.Activate(context.Background(), "user-1"); err == nil {
		t.Error("Activate() should surface flag write failures")
	}
	if flags.IsActive("user-1") {
		t.Error("failed activation must leave enforcement idle")
	}
}
