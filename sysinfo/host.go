package sysinfo

// Host is the set of platform services the queries are built on. Each
// method performs a single synchronous call into the operating system and
// releases any transient resource it acquired before returning.
type Host interface {
	// BrandingName returns the marketing name of the operating system.
	BrandingName() (string, error)

	// Version returns the raw version numbers reported by the kernel.
	Version() (VersionInfo, error)

	// ComputerName returns the short (NetBIOS style) host name.
	ComputerName() (string, error)

	// UserName returns the name of the interactive user.
	UserName() (string, error)

	// SelfProcess describes the calling process.
	SelfProcess() (ProcessRecord, error)

	// Process describes the process identified by pid.
	Process(pid uint32) (ProcessRecord, error)

	// DiskSpace reports allocation for the root (system) volume.
	DiskSpace() (DiskSpace, error)

	// MemoryStatus reports physical memory totals.
	MemoryStatus() (MemoryStatus, error)

	// InterruptTime returns the time since boot in 100ns ticks, excluding
	// time spent asleep where the platform can tell the difference.
	InterruptTime() (uint64, error)

	// IsServer reports whether the OS is a server edition.
	IsServer() bool
}

// ProcessRecord is one step of the process ancestry chain.
type ProcessRecord struct {
	PID       uint32
	ParentPID uint32
	ImagePath string
}

// DiskSpace is a snapshot of volume allocation. Byte counts are
// units * SectorsPerUnit * BytesPerSector.
type DiskSpace struct {
	TotalUnits     uint64
	UsedUnits      uint64
	SectorsPerUnit uint32
	BytesPerSector uint32
}

// TotalBytes returns the volume capacity in bytes.
func (d DiskSpace) TotalBytes() uint64 {
	return d.TotalUnits * uint64(d.SectorsPerUnit) * uint64(d.BytesPerSector)
}

// UsedBytes returns the allocated space in bytes.
func (d DiskSpace) UsedBytes() uint64 {
	return d.UsedUnits * uint64(d.SectorsPerUnit) * uint64(d.BytesPerSector)
}

// MemoryStatus is a snapshot of physical memory in bytes.
type MemoryStatus struct {
	TotalPhys uint64
	AvailPhys uint64
}

// VersionInfo carries the numbers returned by the kernel version query.
// Family names the OS line when Platform does not identify it.
type VersionInfo struct {
	Platform uint32
	Family   string
	Major    uint32
	Minor    uint32
	Build    uint32
}
