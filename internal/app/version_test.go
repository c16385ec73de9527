package app

import (
	"strings"
	"testing"
)

func TestFormatVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version string
		commit  string
		built   string
		want    string
	}{
		{name: "release", version: "v1.4.0", commit: "3f9a2c1", built: "2026-10-01T08:00:00Z", want: "v1.4.0 (3f9a2c1, 2026-10-01T08:00:00Z)"},
		{name: "long revision is shortened", version: "dev", commit: "3f9a2c1b7d4e5f60718293a4b5c6d7e8f9012345", want: "dev (3f9a2c1b7d4e)"},
		{name: "nothing stamped", version: "dev", want: "dev (unknown)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatVersion(tt.version, tt.commit, tt.built); got != tt.want {
				t.Errorf("formatVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildVersion_StartsWithVersion(t *testing.T) {
	if got := BuildVersion(); !strings.HasPrefix(got, Version+" (") {
		t.Errorf("BuildVersion() = %q, want prefix %q", got, Version+" (")
	}
}
