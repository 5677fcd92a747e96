package timer

import "errors"

// ErrNotAuthenticated is returned when a timer operation is attempted
// without an account. Surfaced to the UI as a failed result.
var ErrNotAuthenticated = errors.New("timer: no authenticated account")
