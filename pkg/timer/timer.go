// Package timer tracks the craving-resistance session timer for each
// account. The persisted start instant is the single source of truth;
// elapsed time is always derived from it, never stored, so every reader
// computes the same value. A recomputation loop republishes the derived
// elapsed time at a short fixed interval for smooth display, and is
// cancelled deterministically on stop, reset, and shutdown.
package timer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/unhooked-app/craving-intervention/pkg/metrics"
	"github.com/unhooked-app/craving-intervention/pkg/profile"
)

// DefaultTickInterval is the cadence of the elapsed-time recomputation loop.
const DefaultTickInterval = 50 * time.Millisecond

// Tick is one republication of the derived elapsed time.
type Tick struct {
	ElapsedMillis int64
	IsRunning     bool
}

// Service coordinates the persisted timer state with the local
// recomputation loop for each account.
type Service struct {
	store    profile.TimerStore
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	start   time.Time
	cancel  context.CancelFunc
	done    chan struct{}
	elapsed atomic.Int64

	wmu      sync.Mutex
	watchers map[chan Tick]struct{}
}

// Option configures a Service.
type Option func(*Service)

// WithTickInterval overrides the recomputation loop cadence.
func WithTickInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new timer service on top of the persisted timer store.
func NewService(store profile.TimerStore, opts ...Option) *Service {
	s := &Service{
		store:    store,
		interval: DefaultTickInterval,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a new craving-resistance attempt. Starting an already-running
// timer is a no-op (the loop is still ensured locally, since the timer may
// have been started on another device). The remote write happens before any
// local state changes, so a persistence failure leaves nothing to diverge.
func (s *Service) Start(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.GetTimer(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to read timer state: %w", err)
	}

	if current.IsRunning && current.HasStart() {
		logrus.Debugf("timer already running for user %s, ensuring loop", userID)
		s.ensureLoopLocked(userID, *current.StartTime)
		return nil
	}

	now := s.now()
	state := &profile.TimerState{
		StartTime:   &now,
		IsRunning:   true,
		LastUpdated: now,
	}
	if err := s.store.SetTimer(ctx, userID, state); err != nil {
		logrus.Errorf("failed to persist timer start for user %s: %v", userID, err)
		return fmt.Errorf("failed to persist timer start: %w", err)
	}

	s.ensureLoopLocked(userID, now)
	metrics.TimerStartsTotal.Inc()
	logrus.Infof("timer started for user %s at %v", userID, now)
	return nil
}

// Stop halts the running timer, keeping the recorded start instant.
// Idempotent: stopping a stopped timer persists the same state again.
func (s *Service) Stop(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.GetTimer(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to read timer state: %w", err)
	}

	current.IsRunning = false
	current.LastUpdated = s.now()
	if err := s.store.SetTimer(ctx, userID, current); err != nil {
		logrus.Errorf("failed to persist timer stop for user %s: %v", userID, err)
		return fmt.Errorf("failed to persist timer stop: %w", err)
	}

	s.cancelLoopLocked(userID)
	logrus.Infof("timer stopped for user %s", userID)
	return nil
}

// Reset clears the start instant and stops the timer.
func (s *Service) Reset(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := &profile.TimerState{
		StartTime:   nil,
		IsRunning:   false,
		LastUpdated: s.now(),
	}
	if err := s.store.SetTimer(ctx, userID, state); err != nil {
		logrus.Errorf("failed to persist timer reset for user %s: %v", userID, err)
		return fmt.Errorf("failed to persist timer reset: %w", err)
	}

	s.cancelLoopLocked(userID)
	logrus.Infof("timer reset for user %s", userID)
	return nil
}

// ResumeOnLoad restores the recomputation loop after a cold start. The loop
// is anchored at the persisted start instant, not a fresh capture, so the
// elapsed time is correct even if the process died while the timer ran.
func (s *Service) ResumeOnLoad(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.GetTimer(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to read timer state: %w", err)
	}

	if !state.IsRunning || !state.HasStart() {
		logrus.Debugf("no running timer to resume for user %s", userID)
		return nil
	}

	s.ensureLoopLocked(userID, *state.StartTime)
	logrus.Infof("resumed timer for user %s anchored at %v", userID, *state.StartTime)
	return nil
}

// Snapshot returns the persisted timer state plus the derived elapsed time.
func (s *Service) Snapshot(ctx context.Context, userID string) (*profile.TimerState, int64, error) {
	state, err := s.store.GetTimer(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read timer state: %w", err)
	}

	var elapsed int64
	if state.IsRunning && state.HasStart() {
		elapsed = s.now().Sub(*state.StartTime).Milliseconds()
	}
	return state, elapsed, nil
}

// ElapsedMillis returns the most recently republished elapsed time for the
// local loop, or 0 when no loop is running. Lock-free; suitable for polling.
func (s *Service) ElapsedMillis(userID string) int64 {
	s.mu.Lock()
	sess := s.sessions[userID]
	s.mu.Unlock()

	if sess == nil {
		return 0
	}
	return sess.elapsed.Load()
}

// Watch subscribes to the recomputation loop's ticks. The returned channel
// is closed when the timer stops or the returned detach func is called.
// Returns nil when no timer is running locally.
func (s *Service) Watch(userID string) (<-chan Tick, func()) {
	s.mu.Lock()
	sess := s.sessions[userID]
	s.mu.Unlock()

	if sess == nil {
		return nil, func() {}
	}

	ch := make(chan Tick, 1)
	sess.wmu.Lock()
	sess.watchers[ch] = struct{}{}
	sess.wmu.Unlock()

	detach := func() {
		sess.wmu.Lock()
		if _, ok := sess.watchers[ch]; ok {
			delete(sess.watchers, ch)
			close(ch)
		}
		sess.wmu.Unlock()
	}
	return ch, detach
}

// Shutdown cancels every recomputation loop and waits for them to exit.
func (s *Service) Shutdown() {
	s.mu.Lock()
	sessions := make([]*session, 0, len(s.sessions))
	for userID, sess := range s.sessions {
		sessions = append(sessions, sess)
		delete(s.sessions, userID)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.cancel()
		<-sess.done
	}
	logrus.Info("all timer loops stopped")
}

// ensureLoopLocked starts the recomputation loop for a user if one is not
// already running. Caller holds s.mu.
func (s *Service) ensureLoopLocked(userID string, start time.Time) {
	if _, ok := s.sessions[userID]; ok {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	sess := &session{
		start:    start,
		cancel:   cancel,
		done:     make(chan struct{}),
		watchers: make(map[chan Tick]struct{}),
	}
	sess.elapsed.Store(s.now().Sub(start).Milliseconds())
	s.sessions[userID] = sess

	go s.runLoop(ctx, sess)
}

// cancelLoopLocked stops the loop for a user and waits for it to exit.
// Caller holds s.mu.
func (s *Service) cancelLoopLocked(userID string) {
	sess, ok := s.sessions[userID]
	if !ok {
		return
	}
	delete(s.sessions, userID)
	sess.cancel()
	<-sess.done
}

// runLoop republishes the derived elapsed time at the configured cadence.
// It only reads the anchored start instant; it never mutates it.
func (s *Service) runLoop(ctx context.Context, sess *session) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer close(sess.done)
	defer sess.closeWatchers()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			elapsed := s.now().Sub(sess.start).Milliseconds()
			sess.elapsed.Store(elapsed)
			sess.publish(Tick{ElapsedMillis: elapsed, IsRunning: true})
		}
	}
}

// publish delivers a tick to every watcher without blocking the loop.
// A watcher that has not drained its previous tick just misses this one.
func (sess *session) publish(tick Tick) {
	sess.wmu.Lock()
	defer sess.wmu.Unlock()
	for ch := range sess.watchers {
		select {
		case ch <- tick:
		default:
		}
	}
}

func (sess *session) closeWatchers() {
	sess.wmu.Lock()
	defer sess.wmu.Unlock()
	for ch := range sess.watchers {
		delete(sess.watchers, ch)
		close(ch)
	}
}
