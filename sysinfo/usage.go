package sysinfo

import (
	"fmt"
	"math"
)

// DiskUsage returns used/total space of the root volume, e.g.
// "212.47 GiB / 475.83 GiB (45%)" with the percentage in cyan.
//
// A failed disk-space query is returned as a *QueryError.
func (f *Fetcher) DiskUsage() (string, error) {
	d, err := f.host.DiskSpace()
	if err != nil {
		return "", &QueryError{Op: "disk usage", Err: err}
	}
	return FormatUsage(d.UsedBytes(), d.TotalBytes()), nil
}

// MemoryUsage returns used/total physical memory, e.g.
// "9.81 GiB / 31.92 GiB (31%)" with the percentage in cyan. Used memory is
// total minus available.
//
// A failed memory-status query is returned as a *QueryError.
func (f *Fetcher) MemoryUsage() (string, error) {
	m, err := f.host.MemoryStatus()
	if err != nil {
		return "", &QueryError{Op: "memory usage", Err: err}
	}

	var used uint64
	if m.AvailPhys < m.TotalPhys {
		used = m.TotalPhys - m.AvailPhys
	}
	return FormatUsage(used, m.TotalPhys), nil
}

// FormatUsage renders a used/total byte pair as
// "<used> GiB / <total> GiB (<percent>%)". Sizes carry two decimals and
// the percentage is rounded to the nearest integer. A zero total renders
// as 0% rather than dividing by zero.
func FormatUsage(used, total uint64) string {
	return fmt.Sprintf("%s / %s (%s%d%%%s)",
		FormatGiB(used), FormatGiB(total), ColorCyan, UsagePercent(used, total), ColorReset)
}

// UsagePercent returns round(used/total*100), or 0 when total is 0.
func UsagePercent(used, total uint64) uint64 {
	if total == 0 {
		return 0
	}
	return uint64(math.Round(float64(used) / float64(total) * 100))
}
