// Package main provides the sysfetch command-line tool for displaying system
// information next to an ASCII art logo.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"sysfetch/ascii"
	"sysfetch/config"
	"sysfetch/sysinfo"
)

// options are the command-line flags. Only flags given explicitly override
// the config file.
type options struct {
	configPath string
	compact    bool
	gap        int
	debug      bool
	noColor    bool
	maxWidth   int
	fields     string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flag.BoolVar(&opts.compact, "compact", false, "use compact alternative ASCII logo")
	flag.IntVar(&opts.gap, "gap", config.DefaultGap, "number of spaces between logo and info")
	flag.BoolVar(&opts.debug, "debug", false, "log diagnostics for failed queries to stderr")
	flag.BoolVar(&opts.noColor, "no-color", false, "disable ANSI colors")
	flag.IntVar(&opts.maxWidth, "max-width", 0, "truncate values to this many columns (0 = no limit)")
	flag.StringVar(&opts.fields, "fields", "", "comma-separated fields to show: "+strings.Join(sysinfo.FieldKeys, ","))
	flag.Parse()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, sync := newLogger(cfg.Debug)
	defer sync()

	fetcher := sysinfo.NewFetcher(sysinfo.NewHost(), log)
	report := sysinfo.Collect(fetcher)

	logo := ascii.Logo(ascii.Select(runtime.GOOS, report.IsServer, cfg.Compact))
	render(os.Stdout, logo, report, cfg)
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cfg *config.Config, opts options) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "compact":
			cfg.Compact = opts.compact
		case "gap":
			cfg.Gap = opts.gap
		case "debug":
			cfg.Debug = opts.debug
		case "no-color":
			cfg.NoColor = opts.noColor
		case "max-width":
			cfg.MaxWidth = opts.maxWidth
		case "fields":
			cfg.Fields = splitFields(opts.fields)
		}
	})
}

func splitFields(s string) []string {
	var fields []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// newLogger returns a zap-backed development logger when debug is set and
// a discarding logger otherwise, plus a function that flushes it.
func newLogger(debug bool) (logr.Logger, func()) {
	if !debug {
		return logr.Discard(), func() {}
	}
	zapLog, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return logr.Discard(), func() {}
	}
	return zapr.NewLogger(zapLog), func() { _ = zapLog.Sync() }
}

// infoLines builds the text column: the colored user@host header, a
// separator of matching visible width, one labeled line per selected
// field and the color bar.
func infoLines(report sysinfo.Report, cfg config.Config) []string {
	lines := []string{
		"",
		report.Identity,
		strings.Repeat("-", sysinfo.VisibleWidth(report.Identity)),
	}

	for _, field := range report.Select(cfg.Fields) {
		value := sysinfo.TruncateString(field.Display(), cfg.MaxWidth)
		lines = append(lines, fmt.Sprintf("%s: %s", colorize(field.Label, sysinfo.ColorBlue), value))
	}

	if cfg.NoColor {
		return append(lines, "")
	}
	return append(lines, "", colorBar(), "")
}

// render draws the logo and info side by side, top-aligned, separated by
// cfg.Gap spaces.
//
// Parameters:
//   - w: Destination for the output
//   - logo: Slice of strings representing the ASCII art, one string per line
//   - report: The collected system information
//   - cfg: Display settings
func render(w io.Writer, logo []string, report sysinfo.Report, cfg config.Config) {
	info := infoLines(report, cfg)

	// Calculate logo width for proper spacing (excluding ANSI codes)
	logoWidth := 0
	for _, line := range logo {
		if width := sysinfo.VisibleWidth(line); width > logoWidth {
			logoWidth = width
		}
	}

	maxLines := max(len(logo), len(info))
	gap := strings.Repeat(" ", cfg.Gap)

	for i := 0; i < maxLines; i++ {
		logoLine := ""
		if i < len(logo) {
			logoLine = logo[i]
		}
		logoLine = sysinfo.PadRight(logoLine, logoWidth)

		infoLine := ""
		if i < len(info) {
			infoLine = info[i]
		}

		line := strings.TrimRight(logoLine+gap+infoLine, " ")
		if cfg.NoColor {
			line = sysinfo.StripANSI(line)
		}
		fmt.Fprintln(w, line)
	}
}

// colorize wraps text with ANSI color codes for terminal output.
func colorize(text, color string) string {
	return color + text + sysinfo.ColorReset
}

// colorBar generates a visual representation of available terminal colors.
//
// Returns:
//   - A string containing colored blocks representing the 16 basic terminal colors
//
// This provides a visual reference similar to other fetch utilities.
func colorBar() string {
	var b strings.Builder
	// Show the 16 basic background colors: 40-47 (standard) and 100-107 (bright)
	for bg := 40; bg <= 47; bg++ {
		fmt.Fprintf(&b, "\033[%dm   ", bg)
	}
	for bg := 100; bg <= 107; bg++ {
		fmt.Fprintf(&b, "\033[%dm   ", bg)
	}
	b.WriteString(sysinfo.ColorReset)
	return b.String()
}
