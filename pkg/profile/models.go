package profile

import (
	"time"
)

// TimerState is the persisted state of an account's craving-resistance timer.
// Elapsed time is never stored; it is always derived from StartTime so that
// every reader computes the same value without synchronization.
type TimerState struct {
	StartTime   *time.Time `json:"startTime,omitempty"`
	IsRunning   bool       `json:"isRunning"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

// HasStart reports whether the timer has a recorded start instant.
func (t *TimerState) HasStart() bool {
	return t != nil && t.StartTime != nil && !t.StartTime.IsZero()
}

// BingeFreePeriod is one completed interval of resisted craving, recorded on
// a relapse transition. Periods are immutable once created and append-only.
type BingeFreePeriod struct {
	ID             string    `json:"id"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	DurationMillis int64     `json:"durationMillis"`
	CreatedAt      time.Time `json:"createdAt"`
}
