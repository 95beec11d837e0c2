//go:build windows

package elevate

import "golang.org/x/sys/windows"

// IsElevated reports whether the current process is already running
// with administrator privileges. If so, ShellExecuteEx launches the
// target directly without showing a UAC prompt.
func IsElevated() bool {
	var token windows.Token
	err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token)
	if err != nil {
		return false
	}
	defer token.Close()
	return token.IsElevated()
}
