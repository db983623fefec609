//go:build !windows

package sysinfo

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
	"strings"
	"unicode"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// DefaultShell is reported when the process ancestry cannot be read.
const DefaultShell = "sh"

// rootVolume is the mount point reported by DiskSpace.
const rootVolume = "/"

// ticksPerSecond converts seconds to 100ns interrupt-time ticks.
const ticksPerSecond = ticksPerMillisecond * millisPerSecond

type gopsutilHost struct{}

// NewHost returns the Host implementation for this platform.
func NewHost() Host {
	return gopsutilHost{}
}

// BrandingName returns the distribution name and release,
// e.g. "Ubuntu 24.04".
func (gopsutilHost) BrandingName() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", fmt.Errorf("host info: %w", err)
	}

	name := info.Platform
	if name == "" {
		name = info.OS
	}
	return strings.TrimSpace(titleCase(name) + " " + info.PlatformVersion), nil
}

func (gopsutilHost) Version() (VersionInfo, error) {
	info, err := host.Info()
	if err != nil {
		return VersionInfo{}, fmt.Errorf("host info: %w", err)
	}

	major, minor, build, err := parseKernelVersion(info.KernelVersion)
	if err != nil {
		return VersionInfo{}, err
	}
	return VersionInfo{Family: titleCase(info.OS), Major: major, Minor: minor, Build: build}, nil
}

// ComputerName returns the host name up to the first dot, matching the
// short form Windows reports.
func (gopsutilHost) ComputerName() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", err
	}
	short, _, _ := strings.Cut(name, ".")
	return short, nil
}

func (gopsutilHost) UserName() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

func (h gopsutilHost) SelfProcess() (ProcessRecord, error) {
	return h.Process(uint32(os.Getpid()))
}

// Process reads the parent id and executable path of pid. When the
// executable link is unreadable (another user's process) the short
// command name is used instead.
func (gopsutilHost) Process(pid uint32) (ProcessRecord, error) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return ProcessRecord{}, fmt.Errorf("process %d: %w", pid, err)
	}

	ppid, err := p.Ppid()
	if err != nil {
		return ProcessRecord{}, fmt.Errorf("process %d parent: %w", pid, err)
	}

	path, err := p.Exe()
	if err != nil || path == "" {
		name, nerr := p.Name()
		if nerr != nil {
			return ProcessRecord{}, fmt.Errorf("process %d image: %w", pid, nerr)
		}
		path = name
	}

	return ProcessRecord{PID: pid, ParentPID: uint32(ppid), ImagePath: path}, nil
}

// DiskSpace reports the root filesystem in 1-byte allocation units.
func (gopsutilHost) DiskSpace() (DiskSpace, error) {
	usage, err := disk.Usage(rootVolume)
	if err != nil {
		return DiskSpace{}, fmt.Errorf("disk usage %s: %w", rootVolume, err)
	}
	return DiskSpace{
		TotalUnits:     usage.Total,
		UsedUnits:      usage.Used,
		SectorsPerUnit: 1,
		BytesPerSector: 1,
	}, nil
}

func (gopsutilHost) MemoryStatus() (MemoryStatus, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemoryStatus{}, fmt.Errorf("virtual memory: %w", err)
	}
	return MemoryStatus{TotalPhys: vm.Total, AvailPhys: vm.Available}, nil
}

func (gopsutilHost) InterruptTime() (uint64, error) {
	seconds, err := host.Uptime()
	if err != nil {
		return 0, fmt.Errorf("uptime: %w", err)
	}
	return seconds * ticksPerSecond, nil
}

func (gopsutilHost) IsServer() bool {
	return false
}

// parseKernelVersion extracts the first three numbers of a release string
// such as "6.8.0-45-generic". Missing trailing components are zero.
func parseKernelVersion(release string) (major, minor, build uint32, err error) {
	fields := strings.FieldsFunc(release, func(r rune) bool { return !unicode.IsDigit(r) })
	if len(fields) == 0 {
		return 0, 0, 0, fmt.Errorf("unrecognized kernel version %q", release)
	}

	var nums [3]uint32
	for i := 0; i < len(nums) && i < len(fields); i++ {
		n, perr := strconv.ParseUint(fields[i], 10, 32)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("kernel version %q: %w", release, perr)
		}
		nums[i] = uint32(n)
	}
	return nums[0], nums[1], nums[2], nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
