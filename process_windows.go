//go:build windows

package elevate

import (
	"golang.org/x/sys/windows"
)

// Process is a handle to one launched elevated process. The shell
// elevation path bypasses the conventional spawn primitive entirely, so
// this owns a raw process handle rather than wrapping an os.Process;
// there are no stdio streams to expose. It is valid until waited on;
// Wait yields the exit status exactly once and releases the handle.
type Process struct {
	handle windows.Handle
	pid    uint32
}

// Pid returns the process ID of the elevated process, or zero if the
// ID could not be queried at launch.
func (p *Process) Pid() int {
	return int(p.pid)
}

// Wait blocks until the process handle is signaled and returns the exit
// status. The wait is infinite; there is no poll or cancellation. Wait
// must be called at most once — it closes the handle before returning.
func (p *Process) Wait() (ExitStatus, error) {
	defer windows.CloseHandle(p.handle)

	event, err := windows.WaitForSingleObject(p.handle, windows.INFINITE)
	if err != nil {
		return ExitStatus{}, &WaitError{Err: err}
	}
	if event != windows.WAIT_OBJECT_0 {
		return ExitStatus{}, &WaitError{Err: windows.GetLastError()}
	}

	var code uint32
	if err := windows.GetExitCodeProcess(p.handle, &code); err != nil {
		return ExitStatus{}, &WaitError{Err: err}
	}
	status := ExitStatus{code: int(code)}
	logger.Debug("elevated process exited", "status", status)
	return status, nil
}
