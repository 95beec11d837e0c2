//go:build unix && !darwin

package elevate

import (
	"os"
	"os/exec"
)

// spawn launches the command through sudo, or through pkexec when a
// graphical prompt was requested and a PolicyKit agent is installed.
//
// sudo must be discoverable on the search path; if it is not, spawn
// fails with ErrNoElevationTool before any process is created. The
// elevated process inherits the caller's stdio, environment and (unless
// CurrentDir was set) working directory, per sudo's own semantics.
func spawn(c *Command) (*Process, error) {
	if c.gui {
		if _, err := exec.LookPath("pkexec"); err == nil {
			return startProcess(c, "pkexec", pkexecArgs(c))
		}
		// No PolicyKit agent; fall back to a terminal sudo prompt.
	}
	if _, err := exec.LookPath("sudo"); err != nil {
		return nil, ErrNoElevationTool
	}
	return startProcess(c, "sudo", sudoArgs(c))
}

// sudoArgs builds the sudo argument vector: -k first when the cached
// credential must be discarded, then -- so a program name starting with
// a dash is never taken for a sudo flag, then program and arguments
// verbatim.
func sudoArgs(c *Command) []string {
	args := make([]string, 0, len(c.args)+3)
	if c.forcePrompt {
		args = append(args, "-k")
	}
	args = append(args, "--", c.program)
	return append(args, c.args...)
}

// pkexecArgs builds the pkexec argument vector. pkexec has no
// credential cache to discard, so the force-prompt setting does not
// apply.
func pkexecArgs(c *Command) []string {
	args := make([]string, 0, len(c.args)+1)
	args = append(args, c.program)
	return append(args, c.args...)
}

func startProcess(c *Command, tool string, args []string) (*Process, error) {
	cmd := exec.Command(tool, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if c.dir != "" {
		cmd.Dir = c.dir
	}
	logger.Debug("spawning elevated process", "tool", tool, "args", args)
	if err := cmd.Start(); err != nil {
		return nil, &OSError{Op: "spawn " + tool, Err: err}
	}
	return &Process{cmd: cmd}, nil
}
