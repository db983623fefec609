package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellSkipsWrappers(t *testing.T) {
	self, procs := chain(
		`C:\Users\dev\.cargo\bin\cargo.exe`,
		`C:\Program Files\ConEmu\ConEmu64.exe`,
		`C:\Windows\explorer.exe`,
	)
	h := &fakeHost{self: self, procs: procs}

	assert.Equal(t, "explorer", newTestFetcher(t, h).Shell())
	assert.Equal(t, []uint32{101, 102}, h.opened)
}

func TestShellStopsAtFirstRealProcess(t *testing.T) {
	self, procs := chain(
		`C:\tools\sysfetch.exe`,
		`C:\Program Files\PowerShell\7\pwsh.exe`,
		`C:\Program Files\WindowsApps\WindowsTerminal.exe`,
	)
	h := &fakeHost{self: self, procs: procs}

	assert.Equal(t, "pwsh", newTestFetcher(t, h).Shell())
	assert.Equal(t, []uint32{101}, h.opened, "walk must not go past the shell")
}

func TestShellSelfNotWrapper(t *testing.T) {
	self, procs := chain("/usr/bin/zsh")
	h := &fakeHost{self: self, procs: procs}

	assert.Equal(t, "zsh", newTestFetcher(t, h).Shell())
	assert.Empty(t, h.opened)
}

func TestShellReturnsLastCandidateWhenParentFails(t *testing.T) {
	// 101 is missing from the table, so opening it fails.
	h := &fakeHost{
		self: 100,
		procs: map[uint32]ProcessRecord{
			100: {PID: 100, ParentPID: 101, ImagePath: `C:\go\bin\go.exe`},
		},
	}

	assert.Equal(t, "go", newTestFetcher(t, h).Shell())
}

func TestShellFirstQueryFails(t *testing.T) {
	h := &fakeHost{selfErr: errDenied}
	assert.Equal(t, DefaultShell, newTestFetcher(t, h).Shell())
}

func TestShellEmptySelfPath(t *testing.T) {
	h := &fakeHost{self: 1, procs: map[uint32]ProcessRecord{1: {PID: 1, ParentPID: 0}}}
	assert.Equal(t, DefaultShell, newTestFetcher(t, h).Shell())
}

func TestShellStopsAtRoot(t *testing.T) {
	h := &fakeHost{
		self: 100,
		procs: map[uint32]ProcessRecord{
			100: {PID: 100, ParentPID: 0, ImagePath: "cargo"},
		},
	}

	assert.Equal(t, "cargo", newTestFetcher(t, h).Shell())
	assert.Empty(t, h.opened)
}

func TestShellLoopProtection(t *testing.T) {
	h := &fakeHost{
		self: 100,
		procs: map[uint32]ProcessRecord{
			100: {PID: 100, ParentPID: 101, ImagePath: "cargo.exe"},
			101: {PID: 101, ParentPID: 100, ImagePath: "ConEmuC64.exe"},
		},
	}

	assert.Equal(t, "ConEmuC64", newTestFetcher(t, h).Shell())
	assert.Equal(t, []uint32{101}, h.opened)
}

func TestShellDepthLimit(t *testing.T) {
	paths := make([]string, maxAncestryDepth+10)
	for i := range paths {
		paths[i] = "cargo.exe"
	}
	self, procs := chain(paths...)
	h := &fakeHost{self: self, procs: procs}

	assert.Equal(t, "cargo", newTestFetcher(t, h).Shell())
	assert.Len(t, h.opened, maxAncestryDepth-1)
}

func TestShellIdempotent(t *testing.T) {
	self, procs := chain("cargo.exe", "bash.exe")
	f := newTestFetcher(t, &fakeHost{self: self, procs: procs})

	require.Equal(t, "bash", f.Shell())
	assert.Equal(t, f.Shell(), f.Shell())
}

func TestIsWrapper(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"ConEmu64", true},
		{"conemuc", true},
		{"OpenConsole", true},
		{"WindowsTerminal", true},
		{"wezterm-gui", true},
		{"wt", true},
		{"wtf", false},
		{"cargo", true},
		{"cargo-watch", false},
		{"Go", true},
		{"gopls", false},
		{"sysfetch", true},
		{"pwsh", false},
		{"cmd", false},
		{"explorer", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, isWrapper(tc.name), tc.name)
	}
}

func TestProcessName(t *testing.T) {
	tests := map[string]string{
		`C:\Windows\System32\cmd.exe`:   "cmd",
		`C:\Program Files\Git\bash.EXE`: "bash",
		"/usr/local/bin/fish":           "fish",
		"pwsh.exe":                      "pwsh",
		".exe":                          ".exe",
		`C:\tools\my.exe.tool`:          "my.exe.tool",
		"  /bin/sh  ":                   "sh",
		"":                              "",
	}
	for in, want := range tests {
		assert.Equal(t, want, processName(in), in)
	}
}
