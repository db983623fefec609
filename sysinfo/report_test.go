package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthyHost() *fakeHost {
	self, procs := chain(`C:\tools\sysfetch.exe`, `C:\Program Files\PowerShell\7\pwsh.exe`)
	return &fakeHost{
		branding: "Windows 11 Pro",
		version:  VersionInfo{Platform: platformWin32NT, Major: 10, Build: 22631},
		computer: "DESKTOP-42",
		user:     "robin",
		self:     self,
		procs:    procs,
		disk:     DiskSpace{TotalUnits: 100, UsedUnits: 50, SectorsPerUnit: 1, BytesPerSector: gib},
		memory:   MemoryStatus{TotalPhys: 8 * gib, AvailPhys: 6 * gib},
		ticks:    tickDay,
		server:   true,
	}
}

func TestCollect(t *testing.T) {
	r := Collect(newTestFetcher(t, healthyHost()))

	assert.Equal(t, "robin@DESKTOP-42", StripANSI(r.Identity))
	assert.True(t, r.IsServer)

	require.Len(t, r.Fields, len(FieldKeys))
	for i, field := range r.Fields {
		assert.Equal(t, FieldKeys[i], field.Key)
		assert.True(t, field.Available(), field.Key)
		assert.NotEmpty(t, field.Label)
	}

	values := map[string]string{}
	for _, field := range r.Fields {
		values[field.Key] = StripANSI(field.Display())
	}
	assert.Equal(t, map[string]string{
		FieldOS:      "Windows 11 Pro",
		FieldVersion: "Windows NT v10.0.22631",
		FieldShell:   "pwsh",
		FieldUptime:  "1 day",
		FieldMemory:  "2.00 GiB / 8.00 GiB (25%)",
		FieldDisk:    "50.00 GiB / 100.00 GiB (50%)",
	}, values)
}

func TestCollectUnavailableFields(t *testing.T) {
	h := healthyHost()
	h.diskErr = errDenied
	h.memoryErr = errDenied
	h.ticksErr = errDenied
	h.brandingErr = ErrCapabilityAbsent

	r := Collect(newTestFetcher(t, h))

	byKey := map[string]Field{}
	for _, field := range r.Select(nil) {
		byKey[field.Key] = field
	}

	assert.False(t, byKey[FieldDisk].Available())
	assert.Equal(t, Placeholder, byKey[FieldDisk].Display())
	assert.False(t, byKey[FieldMemory].Available())
	assert.Equal(t, Placeholder, byKey[FieldMemory].Display())
	assert.False(t, byKey[FieldUptime].Available())
	assert.Equal(t, InvalidUptime, byKey[FieldUptime].Display())

	// absorbed failures still count as available values
	assert.True(t, byKey[FieldOS].Available())
	assert.Equal(t, Placeholder, byKey[FieldOS].Display())
}

func TestCollectIdempotent(t *testing.T) {
	f := newTestFetcher(t, healthyHost())
	assert.Equal(t, Collect(f), Collect(f))
}

func TestReportSelect(t *testing.T) {
	r := Collect(newTestFetcher(t, healthyHost()))

	keys := func(fields []Field) []string {
		var out []string
		for _, f := range fields {
			out = append(out, f.Key)
		}
		return out
	}

	assert.Equal(t, FieldKeys, keys(r.Select(nil)))
	assert.Equal(t, []string{FieldDisk, FieldOS}, keys(r.Select([]string{FieldDisk, FieldOS})))
	assert.Equal(t, []string{FieldShell}, keys(r.Select([]string{"gpu", FieldShell})))
}
