package sysinfo

import "strings"

// Identity returns "<username>@<hostname>" with the user in yellow, the
// separator in red and the host in green, followed by a reset code.
//
// The two lookups are independent: if one fails its segment is replaced
// by InvalidUsername or InvalidHostname and the other segment is still
// shown. The result is never empty.
func (f *Fetcher) Identity() string {
	user, err := f.host.UserName()
	user = strings.TrimSpace(user)
	if err != nil || user == "" {
		f.log.V(1).Info("username unavailable", "error", errString(err))
		user = InvalidUsername
	}

	host, err := f.host.ComputerName()
	host = strings.TrimSpace(host)
	if err != nil || host == "" {
		f.log.V(1).Info("hostname unavailable", "error", errString(err))
		host = InvalidHostname
	}

	return ColorYellow + user + ColorRed + "@" + ColorGreen + host + ColorReset
}

func errString(err error) string {
	if err == nil {
		return "empty result"
	}
	return err.Error()
}
