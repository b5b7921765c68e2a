package engine

import "errors"

// ErrSessionFailed is returned when the host tracking service reports an
// unrecoverable failure. The caller should terminate the session; every
// other failure mode is recoverable and handled by a session reset
var ErrSessionFailed = errors.New("ar session failed")
