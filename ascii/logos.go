// Package ascii provides the ASCII art logos drawn next to the system
// information. Logos are color-coded using ANSI escape sequences.
package ascii

import "sysfetch/sysinfo"

// Kind identifies one of the built-in logos.
type Kind int

const (
	WindowsClient Kind = iota
	WindowsServer
	Compact
	Generic
)

// Select picks the logo for the running platform.
//
// Parameters:
//   - goos: The value of runtime.GOOS
//   - isServer: Whether the OS reports a server edition
//   - compact: Whether the user asked for the small logo
func Select(goos string, isServer, compact bool) Kind {
	switch {
	case compact:
		return Compact
	case goos != "windows":
		return Generic
	case isServer:
		return WindowsServer
	default:
		return WindowsClient
	}
}

// Logo returns the art for k, one string per line.
func Logo(k Kind) []string {
	switch k {
	case WindowsServer:
		return windowsServerLogo()
	case Compact:
		return compactLogo()
	case Generic:
		return genericLogo()
	default:
		return windowsClientLogo()
	}
}

// windowsClientLogo is the four-pane Windows 10/11 flag in cyan.
func windowsClientLogo() []string {
	c := sysinfo.ColorCyan
	r := sysinfo.ColorReset

	top := c + "llllllllllllll  lllllllllllllllllll" + r
	return []string{
		c + "                               ..,," + r,
		c + "                    ....,,:;+ccllll" + r,
		c + "      ...,,+:;  cllllllllllllllllll" + r,
		c + ",cclllllllllll  lllllllllllllllllll" + r,
		top, top, top, top, top,
		"",
		top, top, top, top, top, top, top,
		c + "`'ccllllllllll  lllllllllllllllllll" + r,
	}
}

// windowsServerLogo uses the older waving flag in blue so server installs
// are visually distinct.
func windowsServerLogo() []string {
	c := sysinfo.ColorBlue
	r := sysinfo.ColorReset

	return []string{
		c + "        ,.=:!!t3Z3z.," + r,
		c + "       :tt:::tt333EE3" + r,
		c + "       Et:::ztt33EEEL" + r + " @Ee.,      ..,",
		c + "      ;tt:::tt333EE7" + r + " ;EEEEEEttttt33#",
		c + "     :Et:::zt333EEQ." + r + " $EEEEEttttt33QL",
		c + "     it::::tt333EEF" + r + " @EEEEEEttttt33F",
		c + "    ;3=*^```\"*4EEV" + r + " :EEEEEEttttt33@.",
		c + "    ,.=::::!t=., " + r + "`" + c + " @EEEEEEtttz33QF",
		c + "   ;::::::::zt33)" + r + "   \"4EEEtttji3P*",
		c + "  :t::::::::tt33." + r + ":Z3z..  `` ,..g.",
		c + "  i::::::::zt33F" + r + " AEEEtttt::::ztF",
		c + " ;:::::::::t33V" + r + " ;EEEttttt::::t3",
		c + " E::::::::zt33L" + r + " @EEEtttt::::z3F",
		c + "{3=*^```\"*4E3)" + r + " ;EEEtttt:::::tZ`",
		c + "             `" + r + " :EEEEtttt::::z7",
		c + "                 \"VEzjt:;;z>*`" + r,
	}
}

// compactLogo is four solid panes, red above green, for narrow terminals.
func compactLogo() []string {
	r := sysinfo.ColorRed
	g := sysinfo.ColorGreen
	reset := sysinfo.ColorReset

	pane := "#######  #######"
	return []string{
		r + pane + reset,
		r + pane + reset,
		r + pane + reset,
		"",
		g + pane + reset,
		g + pane + reset,
		g + pane + reset,
	}
}

// genericLogo is a terminal window for platforms without their own art.
func genericLogo() []string {
	y := sysinfo.ColorYellow
	w := sysinfo.ColorWhite
	reset := sysinfo.ColorReset

	return []string{
		w + " ________________ " + reset,
		w + "|  ____________  |" + reset,
		w + "| |" + y + ">_" + w + "          | |" + reset,
		w + "| |            | |" + reset,
		w + "| |            | |" + reset,
		w + "| |____________| |" + reset,
		w + "|________________|" + reset,
		w + "    ____|__|____  " + reset,
	}
}
