//go:build darwin

package elevate

import (
	"os"
	"os/exec"
)

// spawn launches the command through osascript's "do shell script ...
// with administrator privileges", which shows the native macOS
// credential dialog. This path is always graphical; the Gui setting has
// no effect here, and neither does the force-prompt setting — the
// Security framework manages its own authorization cache.
//
// The privileged command runs under a shell with the initial system
// session's environment, so stdout and stderr of the target are relayed
// through osascript rather than attached directly.
func spawn(c *Command) (*Process, error) {
	script := `do shell script ` +
		appleScriptString(shellCommandLine(c.program, c.args)) +
		` with administrator privileges`

	cmd := exec.Command("osascript", "-e", script)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if c.dir != "" {
		cmd.Dir = c.dir
	}
	logger.Debug("spawning elevated process", "tool", "osascript", "script", script)
	if err := cmd.Start(); err != nil {
		return nil, &OSError{Op: "spawn osascript", Err: err}
	}
	return &Process{cmd: cmd}, nil
}
