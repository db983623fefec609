package sysinfo

// Field keys accepted by Report.Select and the config file.
const (
	FieldOS      = "os"
	FieldVersion = "version"
	FieldShell   = "shell"
	FieldUptime  = "uptime"
	FieldMemory  = "memory"
	FieldDisk    = "disk"
)

// FieldKeys lists every field in display order.
var FieldKeys = []string{FieldOS, FieldVersion, FieldShell, FieldUptime, FieldMemory, FieldDisk}

// Field is one labeled line of output. Err is set when the value could
// not be obtained; the caller decides how to show it.
type Field struct {
	Key   string
	Label string
	Value string
	Err   error
}

// Available reports whether the field holds a real value.
func (f Field) Available() bool {
	return f.Err == nil
}

// Display returns the value, or the fallback text for an unavailable
// field.
func (f Field) Display() string {
	if f.Available() {
		return f.Value
	}
	if f.Key == FieldUptime {
		return InvalidUptime
	}
	return Placeholder
}

// Report holds the output of a full run of every query.
type Report struct {
	// Identity is the colored user@host header
	Identity string

	// Fields holds one entry per key in FieldKeys, in that order
	Fields []Field

	// IsServer indicates whether the OS is a server edition
	IsServer bool
}

// Collect runs every query once, in order, and gathers the results.
// Queries that fail are recorded as unavailable fields rather than
// aborting the run.
func Collect(f *Fetcher) Report {
	uptime, uerr := f.Uptime()
	memory, merr := f.MemoryUsage()
	disk, derr := f.DiskUsage()

	r := Report{
		Identity: f.Identity(),
		Fields: []Field{
			{Key: FieldOS, Label: "OS", Value: f.OSName()},
			{Key: FieldVersion, Label: "Kernel", Value: f.OSVersion()},
			{Key: FieldShell, Label: "Shell", Value: f.Shell()},
			{Key: FieldUptime, Label: "Uptime", Value: uptime, Err: uerr},
			{Key: FieldMemory, Label: "Memory", Value: memory, Err: merr},
			{Key: FieldDisk, Label: "Disk", Value: disk, Err: derr},
		},
		IsServer: f.host.IsServer(),
	}

	for _, field := range r.Fields {
		if !field.Available() {
			f.log.V(1).Info("field unavailable", "field", field.Key, "error", field.Err.Error())
		}
	}
	return r
}

// Select returns the fields named by keys in the order given. Unknown keys
// are skipped. An empty keys slice selects every field.
func (r Report) Select(keys []string) []Field {
	if len(keys) == 0 {
		return r.Fields
	}

	byKey := make(map[string]Field, len(r.Fields))
	for _, field := range r.Fields {
		byKey[field.Key] = field
	}

	selected := make([]Field, 0, len(keys))
	for _, key := range keys {
		if field, ok := byKey[key]; ok {
			selected = append(selected, field)
		}
	}
	return selected
}
