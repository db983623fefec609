//go:build windows

package sysinfo

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	modadvapi32 = windows.NewLazySystemDLL("advapi32.dll")

	procGlobalMemoryStatusEx       = modkernel32.NewProc("GlobalMemoryStatusEx")
	procGetDiskSpaceInformationW   = modkernel32.NewProc("GetDiskSpaceInformationW")
	procQueryUnbiasedInterruptTime = modkernel32.NewProc("QueryUnbiasedInterruptTime")
	procGlobalFree                 = modkernel32.NewProc("GlobalFree")
	procGetUserNameW               = modadvapi32.NewProc("GetUserNameW")
)

// findProc resolves a lazily bound export, mapping a missing DLL or symbol
// to ErrCapabilityAbsent so callers never invoke an unresolved proc.
func findProc(p *windows.LazyProc) error {
	if err := p.Find(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCapabilityAbsent, p.Name, err)
	}
	return nil
}

// systemLibrary is a module loaded from System32 for the duration of one
// query. Close must be called on every path once it has been loaded.
type systemLibrary struct {
	name   string
	handle windows.Handle
}

func loadSystemLibrary(name string) (*systemLibrary, error) {
	h, err := windows.LoadLibraryEx(name, 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", ErrCapabilityAbsent, name, err)
	}
	return &systemLibrary{name: name, handle: h}, nil
}

// proc looks up an exported function. A missing export is reported as
// ErrCapabilityAbsent.
func (l *systemLibrary) proc(name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(l.handle, name)
	if err != nil || addr == 0 {
		return 0, fmt.Errorf("%w: %s!%s: %v", ErrCapabilityAbsent, l.name, name, err)
	}
	return addr, nil
}

func (l *systemLibrary) Close() {
	if l.handle != 0 {
		_ = windows.FreeLibrary(l.handle)
		l.handle = 0
	}
}

// globalString is a UTF-16 string allocated by the OS with GlobalAlloc.
// Close releases it with GlobalFree.
type globalString struct {
	ptr *uint16
}

func (g globalString) String() string {
	if g.ptr == nil {
		return ""
	}
	return windows.UTF16PtrToString(g.ptr)
}

func (g globalString) Close() {
	if g.ptr == nil || findProc(procGlobalFree) != nil {
		return
	}
	_, _, _ = procGlobalFree.Call(uintptr(unsafe.Pointer(g.ptr)))
}

// hresultError converts a failing HRESULT into an error, unwrapping
// HRESULT_FROM_WIN32 values to the underlying Win32 error code.
func hresultError(op string, hr uintptr) error {
	code := uint32(hr)
	if code&0xFFFF0000 == 0x80070000 {
		return fmt.Errorf("%s: %w", op, windows.Errno(code&0xFFFF))
	}
	return fmt.Errorf("%s: HRESULT 0x%08X", op, code)
}

// lastError picks the error reported by a failed proc call, falling back to
// a generic message when the OS left the last-error value unset.
func lastError(op string, err error) error {
	if err != nil && err != syscall.Errno(0) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s failed", op)
}
