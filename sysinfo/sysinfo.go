// Package sysinfo queries the host operating system for display-oriented
// facts (OS name and version, user@host, shell, disk, memory and uptime)
// and formats each one as a short string with embedded ANSI color markup.
//
// Every query goes through the Host capability interface; the platform
// implementation is selected at build time (see host_windows.go and
// host_other.go).
package sysinfo

import "github.com/go-logr/logr"

// ANSI color codes for terminal output formatting
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
)

// Fallback strings substituted when a query cannot produce a value.
const (
	Placeholder     = "Unknown"
	InvalidHostname = "invalid_hostname"
	InvalidUsername = "invalid_username"
	InvalidUptime   = "invalid_uptime"
)

// Fetcher runs the individual system queries against a Host.
//
// A Fetcher holds no mutable state: calling any method twice with an
// unchanged host yields identical strings, and methods may be called from
// several goroutines at once.
type Fetcher struct {
	host Host
	log  logr.Logger
}

// NewFetcher returns a Fetcher bound to host. Failures that are absorbed
// into placeholder strings are reported to log at V(1).
//
// Parameters:
//   - host: The platform capability implementation, usually NewHost()
//   - log: Diagnostic logger; pass logr.Discard() to silence it
func NewFetcher(host Host, log logr.Logger) *Fetcher {
	return &Fetcher{host: host, log: log}
}
