package utils

import "testing"

func TestResolvePath(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		baseDir string
		want    string
	}{
		{"absolute passes through", "/etc/orion-sentinel/profiles", "/base", "/etc/orion-sentinel/profiles"},
		{"relative joins base", "profiles", "/etc/orion-sentinel", "/etc/orion-sentinel/profiles"},
		{"dot segments cleaned", "./profiles/../.env", "/etc/orion-sentinel", "/etc/orion-sentinel/.env"},
		{"parent escapes base", "../shared/.env", "/etc/orion-sentinel", "/etc/shared/.env"},
		{"empty path is base", "", "/etc/orion-sentinel", "/etc/orion-sentinel"},
		{"doubled separators cleaned", "profiles//standard", "/etc//orion-sentinel", "/etc/orion-sentinel/profiles/standard"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolvePath(tc.path, tc.baseDir); got != tc.want {
				t.Errorf("ResolvePath(%q, %q) = %q, want %q", tc.path, tc.baseDir, got, tc.want)
			}
		})
	}
}
