package sysinfo

import (
	"fmt"
	"strings"
)

// buildNumberMask keeps the low 28 bits of the reported build number. The
// top nibble of dwBuildNumber carries flag bits on NT kernels, and the
// "build below 22000 means Windows 10" heuristic only holds on the masked
// value.
const buildNumberMask = 0x0FFFFFFF

// platformWin32NT is VER_PLATFORM_WIN32_NT.
const platformWin32NT = 2

// OSName returns the marketing name of the operating system
// (e.g., "Windows 11 Pro"), or Placeholder if it cannot be determined.
func (f *Fetcher) OSName() string {
	name, err := f.host.BrandingName()
	if err != nil {
		f.log.V(1).Info("os name unavailable", "error", err.Error())
		return Placeholder
	}

	name = strings.TrimSpace(name)
	if name == "" {
		f.log.V(1).Info("os name unavailable", "error", "empty branding string")
		return Placeholder
	}
	return name
}

// OSVersion returns "<family> v<major>.<minor>.<build>", e.g.
// "Windows NT v10.0.22631", or Placeholder if the version query is not
// available.
func (f *Fetcher) OSVersion() string {
	v, err := f.host.Version()
	if err != nil {
		f.log.V(1).Info("os version unavailable", "error", err.Error())
		return Placeholder
	}
	return FormatVersion(v)
}

// FormatVersion renders v the way OSVersion does. The build number is
// masked with buildNumberMask before formatting.
func FormatVersion(v VersionInfo) string {
	family := v.Family
	if v.Platform == platformWin32NT {
		family = "Windows NT"
	}
	if family == "" {
		family = Placeholder
	}
	return fmt.Sprintf("%s v%d.%d.%d", family, v.Major, v.Minor, maskBuild(v.Build))
}

func maskBuild(build uint32) uint32 {
	return build & buildNumberMask
}
