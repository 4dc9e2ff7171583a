package cli

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-01-01", "2024-01-01", true},
		{"2024-1-1", "", false},
		{"01/02/2024", "", false},
		{"", "", false},
		{"today", time.Now().Format("2006-01-02"), true},
	}

	for _, tc := range cases {
		got, err := parseDate(tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("parseDate(%q) failed: %v", tc.in, err)
			} else if got != tc.want {
				t.Errorf("parseDate(%q) = %s, want %s", tc.in, got, tc.want)
			}
		} else if err == nil {
			t.Errorf("Expected parseDate(%q) to fail", tc.in)
		}
	}
}
