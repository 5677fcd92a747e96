package enforcement

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/unhooked-app/craving-intervention/pkg/profile"
)

// ErrTimerNotRunning is returned when activation is attempted outside a
// running craving-resistance timer. Enforcement is only legal during the
// intervention screen, which is a strict sub-interval of the running timer.
var ErrTimerNotRunning = errors.New("enforcement: no running session timer")

// FlagStore is the writable view of the enforcement flag. The controller is
// its single writer.
type FlagStore interface {
	IsActive(userID string) bool
	SetActive(userID string, active bool) error
}

// TimerReader exposes the persisted timer state the controller gates on.
type TimerReader interface {
	Snapshot(ctx context.Context, userID string) (*profile.TimerState, int64, error)
}

// Controller brackets the interval during which the UI shows the
// intervention screen. Activate must complete (flag durably set) before the
// UI lets the user switch away; Deactivate must complete before normal
// navigation resumes. Both are idempotent; nested activation is idempotent,
// not reference-counted.
type Controller struct {
	flags  FlagStore
	timers TimerReader
}

// NewController creates an activation controller.
func NewController(flags FlagStore, timers TimerReader) *Controller {
	return &Controller{
		flags:  flags,
		timers: timers,
	}
}

// Activate arms enforcement for the user. No-op when already armed.
func (c *Controller) Activate(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("activate: missing user id")
	}

	if c.flags.IsActive(userID) {
		logrus.Debugf("enforcement already active for user %s", userID)
		return nil
	}

	state, _, err := c.timers.Snapshot(ctx, userID)
	if err != nil {
		return fmt.Errorf("activate: failed to read timer state: %w", err)
	}
	if !state.IsRunning {
		return ErrTimerNotRunning
	}

	if err := c.flags.SetActive(userID, true); err != nil {
		return fmt.Errorf("activate: %w", err)
	}

	logrus.Infof("enforcement armed for user %s", userID)
	return nil
}

// Deactivate disarms enforcement for the user. No-op when already idle.
// Every path that leaves the intervention screen must end up here exactly
// once; a missed deactivation locks the user out of their own apps outside
// of a craving episode.
func (c *Controller) Deactivate(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("deactivate: missing user id")
	}

	if !c.flags.IsActive(userID) {
		logrus.Debugf("enforcement already idle for user %s", userID)
		return nil
	}

	if err := c.flags.SetActive(userID, false); err != nil {
		return fmt.Errorf("deactivate: %w", err)
	}

	logrus.Infof("enforcement disarmed for user %s", userID)
	return nil
}
