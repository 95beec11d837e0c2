//go:build windows

package elevate

import (
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

var (
	modshell32          = syscall.NewLazyDLL("shell32.dll")
	procShellExecuteExW = modshell32.NewProc("ShellExecuteExW")
)

const (
	seeMaskNoCloseProcess = 0x00000040
	seeMaskNoAsync        = 0x00000100
)

// shellExecuteInfoW mirrors SHELLEXECUTEINFOW. The trailing handle
// fields are kept as uintptr except hProcess, which is the one output
// we care about.
type shellExecuteInfoW struct {
	cbSize     uint32
	fMask      uint32
	hwnd       uintptr
	verb       *uint16
	file       *uint16
	parameters *uint16
	directory  *uint16
	show       int32
	instApp    uintptr
	idList     uintptr
	class      *uint16
	keyClass   uintptr
	hotKey     uint32
	monitor    uintptr
	process    windows.Handle
}

// spawn launches the command through the shell's elevation verb.
//
// There is no sudo equivalent here: elevation is requested by invoking
// ShellExecuteEx with the "runas" verb, which shows the UAC prompt. The
// resulting process is detached — it has no stdio connection to the
// caller — and its working directory defaults to the system directory
// unless CurrentDir was set. A declined prompt and a missing program
// both surface as the same *OSError; the API does not reliably
// distinguish them.
func spawn(c *Command) (*Process, error) {
	file, err := windows.UTF16PtrFromString(c.program)
	if err != nil {
		return nil, &OSError{Op: "encode program path", Err: err}
	}
	params, err := windows.UTF16PtrFromString(encodeParameterString(c.args))
	if err != nil {
		return nil, &OSError{Op: "encode parameters", Err: err}
	}

	var dir *uint16
	if c.dir != "" {
		if dir, err = windows.UTF16PtrFromString(c.dir); err != nil {
			return nil, &OSError{Op: "encode directory", Err: err}
		}
	}

	// Native executables get the default verb so the OS can infer the
	// elevation need from the target's manifest; everything else
	// (scripts, documents) is forced through "runas".
	var verb *uint16
	if !isNativeExecutable(c.program) {
		verb = windows.StringToUTF16Ptr("runas")
	}

	show := int32(windows.SW_NORMAL)
	if c.hide {
		show = int32(windows.SW_HIDE)
	}

	info := shellExecuteInfoW{
		fMask:      seeMaskNoAsync | seeMaskNoCloseProcess,
		verb:       verb,
		file:       file,
		parameters: params,
		directory:  dir,
		show:       show,
	}
	info.cbSize = uint32(unsafe.Sizeof(info))

	// Lock OS thread for COM operations - COM is thread-bound. The
	// NOASYNC flag makes ShellExecuteEx complete synchronously, so the
	// apartment can be torn down as soon as the call returns.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if initializeCOM() {
		defer ole.CoUninitialize()
	}

	logger.Debug("spawning elevated process", "program", c.program, "verb", verb != nil)
	ret, _, callErr := procShellExecuteExW.Call(uintptr(unsafe.Pointer(&info)))
	if ret == 0 || info.process == 0 {
		if info.process != 0 {
			windows.CloseHandle(info.process)
		}
		return nil, &OSError{Op: "shell execute", Err: callErr}
	}

	// Best effort; a zero PID just means the query failed.
	pid, _ := windows.GetProcessId(info.process)
	return &Process{handle: info.process, pid: pid}, nil
}

// initializeCOM enters a single-threaded apartment on the calling
// thread, as ShellExecuteEx requires. It reports whether a matching
// CoUninitialize is owed: true on S_OK and on S_FALSE (the thread was
// already initialized — that call must still be balanced), false when
// initialization genuinely failed and no teardown may run.
func initializeCOM() bool {
	err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED|ole.COINIT_DISABLE_OLE1DDE)
	if err == nil {
		return true
	}
	if oleErr, ok := err.(*ole.OleError); ok {
		code := oleErr.Code()
		if code == 0 || code == 1 { // S_OK=0, S_FALSE=1
			return true
		}
	}
	return false
}

// isNativeExecutable reports whether the target filename names a native
// executable, in which case the shell's default verb is used and the OS
// decides from the manifest whether elevation is needed.
func isNativeExecutable(program string) bool {
	switch strings.ToLower(filepath.Ext(program)) {
	case ".exe", ".com":
		return true
	}
	return false
}
