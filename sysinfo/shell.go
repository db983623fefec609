package sysinfo

import "strings"

// maxAncestryDepth bounds the ancestry walk in case the platform reports a
// parent chain that never reaches a root.
const maxAncestryDepth = 64

type matchKind int

const (
	matchExact matchKind = iota
	matchPrefix
)

// denyRule names a process that launches the shell rather than being one.
// Names are lowercase and carry no extension.
type denyRule struct {
	name  string
	match matchKind
}

func (r denyRule) matches(lower string) bool {
	if r.match == matchPrefix {
		return strings.HasPrefix(lower, r.name)
	}
	return lower == r.name
}

// shellDenylist lists terminal hosts and tools that sit between the user's
// shell and this program. Prefix rules cover vendor variants such as
// ConEmu64 and ConEmuC64.
var shellDenylist = []denyRule{
	{name: "conemu", match: matchPrefix},
	{name: "openconsole", match: matchPrefix},
	{name: "windowsterminal", match: matchPrefix},
	{name: "wezterm", match: matchPrefix},
	{name: "alacritty", match: matchPrefix},
	{name: "wt", match: matchExact},
	{name: "sysfetch", match: matchExact},
	{name: "cargo", match: matchExact},
	{name: "go", match: matchExact},
}

func isWrapper(name string) bool {
	lower := strings.ToLower(name)
	for _, rule := range shellDenylist {
		if rule.matches(lower) {
			return true
		}
	}
	return false
}

// Shell returns the display name of the nearest ancestor process that is
// not a known terminal host or launcher, e.g. "pwsh" or "bash".
//
// The walk starts at the calling process. If an ancestor cannot be
// queried (it exited, access was denied, or there is no parent) the last
// name obtained is returned. If the calling process itself cannot be
// queried, DefaultShell is returned.
func (f *Fetcher) Shell() string {
	rec, err := f.host.SelfProcess()
	if err != nil {
		f.log.V(1).Info("shell unavailable", "error", err.Error())
		return DefaultShell
	}
	name := processName(rec.ImagePath)
	if name == "" {
		f.log.V(1).Info("shell unavailable", "error", "empty image path", "pid", rec.PID)
		return DefaultShell
	}

	seen := map[uint32]bool{rec.PID: true}
	for depth := 1; depth < maxAncestryDepth && isWrapper(name); depth++ {
		parent := rec.ParentPID
		if parent == 0 || seen[parent] {
			break
		}
		seen[parent] = true

		next, err := f.host.Process(parent)
		if err != nil {
			f.log.V(1).Info("stopping ancestry walk", "pid", parent, "error", err.Error())
			break
		}
		nextName := processName(next.ImagePath)
		if nextName == "" {
			f.log.V(1).Info("stopping ancestry walk", "pid", parent, "error", "empty image path")
			break
		}
		rec, name = next, nextName
	}
	return name
}

// processName reduces an executable path to its display name: the last
// path segment with a trailing ".exe" removed. Both separators are
// accepted so Windows paths are handled on every platform.
func processName(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		path = path[i+1:]
	}
	if len(path) > 4 && strings.EqualFold(path[len(path)-4:], ".exe") {
		path = path[:len(path)-4]
	}
	return path
}
