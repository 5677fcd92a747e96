// Package enforcement implements the app-blocking enforcement loop: a
// two-state monitor (Idle/Armed) driven by foreground-change events, and the
// activation controller that flips it between states. The monitor runs as an
// always-on observer independent of the UI-facing request path; it must
// never crash, so every failure degrades to "event ignored".
package enforcement

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/unhooked-app/craving-intervention/pkg/metrics"
)

// DefaultCooldown is the debounce window that suppresses repeat redirects
// for the same app, avoiding redirect storms from rapid OS-level
// window-state churn.
const DefaultCooldown = time.Second

// Event is a foreground-app-changed notification from a device.
type Event struct {
	UserID     string
	AppID      string
	DeviceID   string
	OccurredAt time.Time
}

// Outcome reports what the monitor did with an event.
type Outcome struct {
	Redirected   bool
	BlockedAppID string
}

// BlockChecker is the read-only view of the block list and enforcement flag
// the monitor consults on every event. Reads must not perform I/O.
type BlockChecker interface {
	IsActive(userID string) bool
	Contains(userID, appID string) bool
}

// Redirector delivers a redirect action back to the user's device.
type Redirector interface {
	Redirect(ctx context.Context, action RedirectAction) error
}

// RedirectAction brings the host app to the foreground on the device,
// carrying the blocked identifier so the UI can show "app X is blocked".
type RedirectAction struct {
	UserID       string    `json:"userId"`
	BlockedAppID string    `json:"blockedAppId"`
	DeviceID     string    `json:"deviceId,omitempty"`
	IssuedAt     time.Time `json:"issuedAt"`
}

type debounceEntry struct {
	appID string
	at    time.Time
}

// Monitor checks foreground-change events against the block list while
// armed. It holds no state between events beyond the per-user
// (lastBlockedID, lastBlockedAt) debounce pair.
type Monitor struct {
	checker    BlockChecker
	redirector Redirector
	hostAppIDs map[string]struct{}
	cooldown   time.Duration
	now        func() time.Time

	mu   sync.Mutex
	last map[string]debounceEntry
}

// MonitorOption configures a Monitor.
type MonitorOption func(*Monitor)

// WithCooldown overrides the debounce window.
func WithCooldown(d time.Duration) MonitorOption {
	return func(m *Monitor) {
		if d > 0 {
			m.cooldown = d
		}
	}
}

// WithMonitorClock overrides the time source. Used by tests.
func WithMonitorClock(now func() time.Time) MonitorOption {
	return func(m *Monitor) { m.now = now }
}

// NewMonitor creates an enforcement monitor. hostAppIDs are this app's own
// identifiers on each platform; events for them are always ignored so the
// app never blocks itself.
func NewMonitor(checker BlockChecker, redirector Redirector, hostAppIDs []string, opts ...MonitorOption) *Monitor {
	hosts := make(map[string]struct{}, len(hostAppIDs))
	for _, id := range hostAppIDs {
		hosts[id] = struct{}{}
	}

	m := &Monitor{
		checker:    checker,
		redirector: redirector,
		hostAppIDs: hosts,
		cooldown:   DefaultCooldown,
		now:        time.Now,
		last:       make(map[string]debounceEntry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// HandleForegroundEvent runs one event through the state machine. It never
// returns an error and never panics outward: the monitor is a privileged
// observer and a crash would silently disable all blocking, so failures
// degrade to an ignored event.
func (m *Monitor) HandleForegroundEvent(ctx context.Context, ev Event) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("enforcement monitor recovered from panic, event dropped: %v", r)
			out = Outcome{}
		}
	}()

	metrics.ForegroundEventsTotal.Inc()

	if ev.UserID == "" || ev.AppID == "" {
		// The event could not be resolved to an app; non-fatal.
		metrics.EventResolutionFailuresTotal.Inc()
		logrus.Debugf("dropping unresolvable foreground event (user=%q app=%q)", ev.UserID, ev.AppID)
		return Outcome{}
	}

	if _, self := m.hostAppIDs[ev.AppID]; self {
		return Outcome{}
	}

	// Idle: every event is ignored regardless of block-list contents.
	if !m.checker.IsActive(ev.UserID) {
		return Outcome{}
	}

	if !m.checker.Contains(ev.UserID, ev.AppID) {
		return Outcome{}
	}

	now := m.now()
	m.mu.Lock()
	last, seen := m.last[ev.UserID]
	if seen && last.appID == ev.AppID && now.Sub(last.at) < m.cooldown {
		m.mu.Unlock()
		metrics.DebounceSuppressedTotal.Inc()
		logrus.Debugf("redirect for user %s app %s suppressed by cooldown", ev.UserID, ev.AppID)
		return Outcome{}
	}
	m.last[ev.UserID] = debounceEntry{appID: ev.AppID, at: now}
	m.mu.Unlock()

	action := RedirectAction{
		UserID:       ev.UserID,
		BlockedAppID: ev.AppID,
		DeviceID:     ev.DeviceID,
		IssuedAt:     now,
	}
	if err := m.redirector.Redirect(ctx, action); err != nil {
		// Fail open: log and keep observing.
		logrus.Errorf("failed to deliver redirect for user %s app %s: %v", ev.UserID, ev.AppID, err)
		return Outcome{}
	}

	metrics.RedirectsTotal.Inc()
	logrus.Infof("redirected user %s away from blocked app %s", ev.UserID, ev.AppID)
	return Outcome{Redirected: true, BlockedAppID: ev.AppID}
}
