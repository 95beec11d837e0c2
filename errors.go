package elevate

import "errors"

// ErrNoElevationTool indicates that no elevation executable (sudo) was
// found on the search path. It is returned by Spawn on Unix before any
// process creation is attempted.
var ErrNoElevationTool = errors.New("no elevation tool found in PATH")

// OSError reports a failed platform call during launch. On Windows it
// wraps the last platform error code from the shell-execute call; note
// that a declined elevation prompt and a missing program surface as the
// same error there, so callers must not branch on distinguishing them.
type OSError struct {
	Op  string // the platform operation that failed, e.g. "shell execute"
	Err error
}

func (e *OSError) Error() string {
	return "elevate: " + e.Op + ": " + e.Err.Error()
}

func (e *OSError) Unwrap() error {
	return e.Err
}

// WaitError reports a failure while waiting for a launched process or
// querying its termination status. It does not mean the process failed;
// a nonzero exit is reported through ExitStatus, not an error.
type WaitError struct {
	Err error
}

func (e *WaitError) Error() string {
	return "elevate: wait: " + e.Err.Error()
}

func (e *WaitError) Unwrap() error {
	return e.Err
}
