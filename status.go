package elevate

import "fmt"

// ExitStatus describes how an elevated process terminated.
type ExitStatus struct {
	code int
}

// Success reports whether the process exited with code zero.
func (s ExitStatus) Success() bool {
	return s.code == 0
}

// ExitCode returns the process exit code.
func (s ExitStatus) ExitCode() int {
	return s.code
}

func (s ExitStatus) String() string {
	return fmt.Sprintf("exit status %d", s.code)
}
