//go:build unix

package elevate

import "os"

// IsElevated reports whether the current process is already running
// with root privileges, in which case elevation is a formality: sudo
// will not prompt, and callers may prefer to run the program directly.
func IsElevated() bool {
	return os.Geteuid() == 0
}
