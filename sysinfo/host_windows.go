//go:build windows

// Package sysinfo - Windows-specific implementation
package sysinfo

import (
	"fmt"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// DefaultShell is reported when the process ancestry cannot be read.
const DefaultShell = "cmd.exe"

const (
	// hostnameCapacity is the buffer size, in UTF-16 units, used for the
	// NetBIOS computer name query.
	hostnameCapacity = 2048

	// usernameCapacity is UNLEN plus the terminating NUL.
	usernameCapacity = 256 + 1

	// imagePathCapacity fits any extended-length path.
	imagePathCapacity = windows.MAX_LONG_PATH
)

// brandingLongName asks winbrand for the full product name, e.g.
// "Windows 11 Pro".
const brandingLongName = "%WINDOWS_LONG%"

// memoryStatusEx represents the Windows MEMORYSTATUSEX structure.
// It provides information about physical and virtual memory.
type memoryStatusEx struct {
	dwLength                uint32
	dwMemoryLoad            uint32
	ullTotalPhys            uint64
	ullAvailPhys            uint64
	ullTotalPageFile        uint64
	ullAvailPageFile        uint64
	ullTotalVirtual         uint64
	ullAvailVirtual         uint64
	ullAvailExtendedVirtual uint64
}

// diskSpaceInformation mirrors DISK_SPACE_INFORMATION.
type diskSpaceInformation struct {
	actualTotalAllocationUnits           uint64
	actualAvailableAllocationUnits       uint64
	actualPoolUnavailableAllocationUnits uint64
	callerTotalAllocationUnits           uint64
	callerAvailableAllocationUnits       uint64
	callerPoolUnavailableAllocationUnits uint64
	usedAllocationUnits                  uint64
	totalReservedAllocationUnits         uint64
	volumeStorageReserveAllocationUnits  uint64
	availableCommittedAllocationUnits    uint64
	poolAvailableAllocationUnits         uint64
	sectorsPerAllocationUnit             uint32
	bytesPerSector                       uint32
}

// osVersionInfoEx mirrors OSVERSIONINFOEXW.
type osVersionInfoEx struct {
	dwOSVersionInfoSize uint32
	dwMajorVersion      uint32
	dwMinorVersion      uint32
	dwBuildNumber       uint32
	dwPlatformID        uint32
	szCSDVersion        [128]uint16
	wServicePackMajor   uint16
	wServicePackMinor   uint16
	wSuiteMask          uint16
	wProductType        byte
	wReserved           byte
}

type windowsHost struct{}

// NewHost returns the Host implementation for this platform.
func NewHost() Host {
	return windowsHost{}
}

// BrandingName loads winbrand.dll, formats %WINDOWS_LONG% through
// BrandingFormatString and frees both the returned string and the module.
func (windowsHost) BrandingName() (string, error) {
	lib, err := loadSystemLibrary("winbrand.dll")
	if err != nil {
		return "", err
	}
	defer lib.Close()

	addr, err := lib.proc("BrandingFormatString")
	if err != nil {
		return "", err
	}

	format, err := windows.UTF16PtrFromString(brandingLongName)
	if err != nil {
		return "", err
	}

	ret, _, _ := syscall.SyscallN(addr, uintptr(unsafe.Pointer(format)))
	if ret == 0 {
		return "", fmt.Errorf("BrandingFormatString returned NULL")
	}
	name := globalString{ptr: (*uint16)(unsafe.Pointer(ret))}
	defer name.Close()

	return name.String(), nil
}

// Version calls ntdll!RtlGetVersion, which unlike GetVersionEx is not
// subject to manifest-based version lies.
func (windowsHost) Version() (VersionInfo, error) {
	lib, err := loadSystemLibrary("ntdll.dll")
	if err != nil {
		return VersionInfo{}, err
	}
	defer lib.Close()

	addr, err := lib.proc("RtlGetVersion")
	if err != nil {
		return VersionInfo{}, err
	}

	var v osVersionInfoEx
	v.dwOSVersionInfoSize = uint32(unsafe.Sizeof(v))

	// RtlGetVersion returns an NTSTATUS; zero is STATUS_SUCCESS.
	status, _, _ := syscall.SyscallN(addr, uintptr(unsafe.Pointer(&v)))
	if status != 0 {
		return VersionInfo{}, fmt.Errorf("RtlGetVersion: %w", windows.NTStatus(status))
	}

	return VersionInfo{
		Platform: v.dwPlatformID,
		Family:   "Windows",
		Major:    v.dwMajorVersion,
		Minor:    v.dwMinorVersion,
		Build:    v.dwBuildNumber,
	}, nil
}

func (windowsHost) ComputerName() (string, error) {
	buf := make([]uint16, hostnameCapacity)
	n := uint32(len(buf))
	if err := windows.GetComputerNameEx(windows.ComputerNameNetBIOS, &buf[0], &n); err != nil {
		return "", fmt.Errorf("GetComputerNameExW: %w", err)
	}
	return windows.UTF16ToString(buf[:n]), nil
}

func (windowsHost) UserName() (string, error) {
	if err := findProc(procGetUserNameW); err != nil {
		return "", err
	}

	buf := make([]uint16, usernameCapacity)
	n := uint32(len(buf))
	ret, _, callErr := procGetUserNameW.Call(uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&n)))
	if ret == 0 {
		return "", lastError("GetUserNameW", callErr)
	}
	if n > uint32(len(buf)) {
		n = uint32(len(buf))
	}
	return windows.UTF16ToString(buf[:n]), nil
}

// SelfProcess queries the current process through its pseudo-handle, which
// must not be closed.
func (windowsHost) SelfProcess() (ProcessRecord, error) {
	return queryProcess(windows.CurrentProcess())
}

func (windowsHost) Process(pid uint32) (ProcessRecord, error) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return ProcessRecord{}, fmt.Errorf("OpenProcess(%d): %w", pid, err)
	}
	defer func() { _ = windows.CloseHandle(h) }()

	return queryProcess(h)
}

// queryProcess reads the parent id and full image path of an open process.
func queryProcess(h windows.Handle) (ProcessRecord, error) {
	var pbi windows.PROCESS_BASIC_INFORMATION
	err := windows.NtQueryInformationProcess(h, windows.ProcessBasicInformation,
		unsafe.Pointer(&pbi), uint32(unsafe.Sizeof(pbi)), nil)
	if err != nil {
		return ProcessRecord{}, fmt.Errorf("NtQueryInformationProcess: %w", err)
	}

	buf := make([]uint16, imagePathCapacity)
	n := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &n); err != nil {
		return ProcessRecord{}, fmt.Errorf("QueryFullProcessImageNameW: %w", err)
	}

	return ProcessRecord{
		PID:       uint32(pbi.UniqueProcessId),
		ParentPID: uint32(pbi.InheritedFromUniqueProcessId),
		ImagePath: windows.UTF16ToString(buf[:n]),
	}, nil
}

// DiskSpace queries the volume holding the current directory's root;
// GetDiskSpaceInformationW treats a NULL path as the root of the current
// volume.
func (windowsHost) DiskSpace() (DiskSpace, error) {
	if err := findProc(procGetDiskSpaceInformationW); err != nil {
		return DiskSpace{}, err
	}

	var info diskSpaceInformation
	hr, _, _ := procGetDiskSpaceInformationW.Call(0, uintptr(unsafe.Pointer(&info)))
	if int32(hr) < 0 {
		return DiskSpace{}, hresultError("GetDiskSpaceInformationW", hr)
	}

	return DiskSpace{
		TotalUnits:     info.actualTotalAllocationUnits,
		UsedUnits:      info.usedAllocationUnits,
		SectorsPerUnit: info.sectorsPerAllocationUnit,
		BytesPerSector: info.bytesPerSector,
	}, nil
}

func (windowsHost) MemoryStatus() (MemoryStatus, error) {
	if err := findProc(procGlobalMemoryStatusEx); err != nil {
		return MemoryStatus{}, err
	}

	var memInfo memoryStatusEx
	memInfo.dwLength = uint32(unsafe.Sizeof(memInfo))

	ret, _, callErr := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&memInfo)))
	if ret == 0 {
		return MemoryStatus{}, lastError("GlobalMemoryStatusEx", callErr)
	}

	return MemoryStatus{TotalPhys: memInfo.ullTotalPhys, AvailPhys: memInfo.ullAvailPhys}, nil
}

// InterruptTime uses QueryUnbiasedInterruptTime, which excludes time spent
// in sleep or hibernation.
func (windowsHost) InterruptTime() (uint64, error) {
	if err := findProc(procQueryUnbiasedInterruptTime); err != nil {
		return 0, err
	}

	var ticks uint64
	ret, _, callErr := procQueryUnbiasedInterruptTime.Call(uintptr(unsafe.Pointer(&ticks)))
	if ret == 0 {
		return 0, lastError("QueryUnbiasedInterruptTime", callErr)
	}
	return ticks, nil
}

// IsServer determines if the current OS is a Windows Server edition.
//
// Detection prefers the InstallationType registry value and falls back to
// the ProductName containing "Server".
func (windowsHost) IsServer() bool {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer func() { _ = k.Close() }()

	if kind, _, err := k.GetStringValue("InstallationType"); err == nil && kind != "" {
		return strings.EqualFold(kind, "Server") || strings.EqualFold(kind, "Server Core")
	}

	productName, _, err := k.GetStringValue("ProductName")
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(productName), "server")
}
