//go:build unix

package elevate

import (
	"errors"
	"os/exec"
)

// Process is a handle to one launched elevated process. It is valid
// until waited on; Wait yields the exit status exactly once.
type Process struct {
	cmd *exec.Cmd
}

// Pid returns the process ID of the elevation tool child (sudo, pkexec
// or osascript), not of the target program itself.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Wait blocks until the process terminates and returns its exit status.
// There is no timeout and no cancellation; once elevated execution has
// started it cannot be aborted from here. Wait must be called at most
// once.
func (p *Process) Wait() (ExitStatus, error) {
	err := p.cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			status := ExitStatus{code: exitErr.ExitCode()}
			logger.Debug("elevated process exited", "status", status)
			return status, nil
		}
		return ExitStatus{}, &WaitError{Err: err}
	}
	logger.Debug("elevated process exited", "status", ExitStatus{})
	return ExitStatus{}, nil
}
