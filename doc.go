/*
Package elevate runs external programs with elevated privileges, hiding
three incompatible platform elevation mechanisms behind one builder API.

On Unix the command is launched through sudo (or pkexec when a graphical
prompt is requested), on Windows through the shell's "runas" elevation
verb, and on macOS through an AppleScript "do shell script ... with
administrator privileges" invocation, which shows the native credential
dialog.

# Basic Usage

The Command type largely follows the shape of os/exec.Cmd, but it does
not support capturing output and gives no guarantees for the working
directory or environment of the elevated process. The platform elevation
mechanisms do not support that either in some cases: on Windows the
working directory of an elevated process defaults to the system
directory, and on macOS the GUI path runs with the initial system
session's environment.

	status, err := elevate.New("rm").
		Arg("/usr/local/my-app").
		Status()
	if err != nil {
		log.Fatal(err)
	}
	if !status.Success() {
		log.Fatalf("rm failed: %v", status)
	}

A Command can be reused: each Spawn produces an independent process, and
builder methods may be called between spawns to adjust the next launch.

	cmd := elevate.New("systemctl").Args("restart", "myservice")
	cmd.Status() // first run
	cmd.Status() // second run, prompts again unless DisableForcePrompt was set

# Platform Support

  - Windows: always a GUI elevation prompt (UAC)
  - macOS: always a GUI prompt (native credential dialog)
  - Linux and other Unix: terminal sudo prompt by default, PolicyKit
    graphical prompt when Gui(true) is set and pkexec is installed

Stdout and stderr are inherited from the parent where the platform
allows it; the Windows elevation path produces a detached process with
no accessible stdio.
*/
package elevate
