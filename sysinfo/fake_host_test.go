package sysinfo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-logr/logr/testr"
)

var errDenied = errors.New("access denied")

// fakeHost is an in-memory Host. Zero-valued error fields mean success.
type fakeHost struct {
	branding    string
	brandingErr error

	version    VersionInfo
	versionErr error

	computer    string
	computerErr error
	user        string
	userErr     error

	self    uint32
	selfErr error
	procs   map[uint32]ProcessRecord
	opened  []uint32

	disk    DiskSpace
	diskErr error

	memory    MemoryStatus
	memoryErr error

	ticks    uint64
	ticksErr error

	server bool
}

func (h *fakeHost) BrandingName() (string, error) { return h.branding, h.brandingErr }
func (h *fakeHost) Version() (VersionInfo, error) { return h.version, h.versionErr }
func (h *fakeHost) ComputerName() (string, error) { return h.computer, h.computerErr }
func (h *fakeHost) UserName() (string, error) { return h.user, h.userErr }

func (h *fakeHost) SelfProcess() (ProcessRecord, error) {
	if h.selfErr != nil {
		return ProcessRecord{}, h.selfErr
	}
	rec, ok := h.procs[h.self]
	if !ok {
		return ProcessRecord{}, fmt.Errorf("process %d: %w", h.self, errDenied)
	}
	return rec, nil
}

func (h *fakeHost) Process(pid uint32) (ProcessRecord, error) {
	h.opened = append(h.opened, pid)
	rec, ok := h.procs[pid]
	if !ok {
		return ProcessRecord{}, fmt.Errorf("process %d: %w", pid, errDenied)
	}
	return rec, nil
}

func (h *fakeHost) DiskSpace() (DiskSpace, error) { return h.disk, h.diskErr }
func (h *fakeHost) MemoryStatus() (MemoryStatus, error) { return h.memory, h.memoryErr }
func (h *fakeHost) InterruptTime() (uint64, error) { return h.ticks, h.ticksErr }
func (h *fakeHost) IsServer() bool { return h.server }

// chain builds a process table where each path is the parent of the one
// before it, starting at pid 100.
func chain(paths ...string) (uint32, map[uint32]ProcessRecord) {
	procs := make(map[uint32]ProcessRecord, len(paths))
	for i, path := range paths {
		pid := uint32(100 + i)
		procs[pid] = ProcessRecord{PID: pid, ParentPID: pid + 1, ImagePath: path}
	}
	return 100, procs
}

func newTestFetcher(t *testing.T, h *fakeHost) *Fetcher {
	t.Helper()
	return NewFetcher(h, testr.New(t))
}
