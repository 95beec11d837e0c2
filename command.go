package elevate

// Command is a builder for a program launch with elevated privileges.
//
// A zero Command is not usable; construct one with New. All builder
// methods return the receiver so calls can be chained. A Command holds
// only configuration: spawning never consumes or mutates it, so the
// same Command can be spawned any number of times, each spawn producing
// an independent process.
type Command struct {
	program     string
	args        []string
	dir         string
	hide        bool
	gui         bool
	forcePrompt bool
}

// New returns a Command that will launch the program at path program
// with elevated privileges. The default configuration is: no arguments,
// program window visible, non-GUI prompt context, and re-authentication
// forced on every run (see DisableForcePrompt).
//
// program is not validated until Spawn; if it is not an absolute path,
// resolution is left to the platform elevation mechanism.
func New(program string) *Command {
	return &Command{
		program:     program,
		forcePrompt: true,
	}
}

// Arg appends a single argument. Arguments are passed to the program
// verbatim and in order; no shell interpretation happens on the Unix
// path, and the Windows and macOS paths escape them so the receiving
// parser reproduces them exactly.
func (c *Command) Arg(arg string) *Command {
	c.args = append(c.args, arg)
	return c
}

// Args appends multiple arguments, preserving their order. It is
// equivalent to calling Arg once per value.
func (c *Command) Args(args ...string) *Command {
	c.args = append(c.args, args...)
	return c
}

// CurrentDir sets the working directory for the elevated process.
//
// When unset, the platform elevation mechanism's default applies, which
// is not necessarily the caller's working directory: on Windows an
// elevated process starts in the system directory. This is a platform
// limitation, not something this package can paper over.
func (c *Command) CurrentDir(dir string) *Command {
	c.dir = dir
	return c
}

// Show controls the visibility of the program's window on platforms
// that support it (Windows only). The default is visible.
func (c *Command) Show(visible bool) *Command {
	c.hide = !visible
	return c
}

// Gui hints that the caller is running in a graphical context and the
// elevation prompt should render as a dialog rather than in a terminal.
// This only affects the Unix path, where it selects pkexec when
// available; Windows and macOS prompts are always graphical. If the
// requested mode is unavailable the other is used silently.
func (c *Command) Gui(gui bool) *Command {
	c.gui = gui
	return c
}

// DisableForcePrompt allows successive elevated commands on Unix to
// reuse sudo's cached credential instead of prompting for a password on
// every run. By default the cached credential is discarded (sudo -k)
// before each launch, so the user is re-prompted each time.
func (c *Command) DisableForcePrompt() *Command {
	c.forcePrompt = false
	return c
}

// Spawn starts the program elevated and returns a handle to the running
// process without waiting for it to finish. Stdin, stdout and stderr
// are inherited from the parent where the platform allows it; the
// Windows elevation path has no accessible stdio.
func (c *Command) Spawn() (*Process, error) {
	return spawn(c)
}

// Status starts the program elevated, waits for it to finish, and
// returns its exit status. It is shorthand for Spawn followed by Wait.
func (c *Command) Status() (ExitStatus, error) {
	p, err := c.Spawn()
	if err != nil {
		return ExitStatus{}, err
	}
	return p.Wait()
}
