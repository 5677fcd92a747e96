package profile

import (
	"context"
)

// The profile/account service owns user profile data. The intervention core
// consumes it only through this narrow contract. Interfaces are split per
// concern so consumers can depend on exactly what they use; the Redis
// implementation below satisfies all of them.

// TimerStore reads and writes the persisted session timer for an account.
type TimerStore interface {
	GetTimer(ctx context.Context, userID string) (*TimerState, error)
	SetTimer(ctx context.Context, userID string, state *TimerState) error
}

// BlockedAppStore reads and writes the remote blocked-app list for an account.
type BlockedAppStore interface {
	GetBlockedApps(ctx context.Context, userID string) ([]string, error)
	SetBlockedApps(ctx context.Context, userID string, appIDs []string) error
}

// LedgerStore persists binge-free periods and the overcome counter.
// IncrementOvercome must be an atomic increment primitive, never a
// read-modify-write, so concurrent increments from multiple devices of the
// same account never lose an update.
type LedgerStore interface {
	AppendPeriod(ctx context.Context, userID string, period *BingeFreePeriod) error
	ListPeriods(ctx context.Context, userID string, limit int) ([]*BingeFreePeriod, error)
	IncrementOvercome(ctx context.Context, userID string) (int64, error)
	GetOvercomeCount(ctx context.Context, userID string) (int64, error)
}

// Store is the complete profile-service contract consumed by the core.
type Store interface {
	TimerStore
	BlockedAppStore
	LedgerStore
}
