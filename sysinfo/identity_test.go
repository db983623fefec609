package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	colored := func(user, host string) string {
		return ColorYellow + user + ColorRed + "@" + ColorGreen + host + ColorReset
	}

	tests := []struct {
		name string
		host fakeHost
		want string
	}{
		{"both", fakeHost{user: "robin", computer: "DESKTOP-42"}, colored("robin", "DESKTOP-42")},
		{"user fails", fakeHost{userErr: errDenied, computer: "DESKTOP-42"}, colored(InvalidUsername, "DESKTOP-42")},
		{"host fails", fakeHost{user: "robin", computerErr: errDenied}, colored("robin", InvalidHostname)},
		{"both fail", fakeHost{userErr: errDenied, computerErr: errDenied}, colored(InvalidUsername, InvalidHostname)},
		{"empty values", fakeHost{user: " ", computer: ""}, colored(InvalidUsername, InvalidHostname)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := newTestFetcher(t, &tc.host).Identity()
			assert.Equal(t, tc.want, got)
			assert.NotEmpty(t, StripANSI(got))
		})
	}
}
