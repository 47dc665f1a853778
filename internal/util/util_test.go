package util

import "testing"

func TestTruncate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a longer description that gets cut", 10, "a longe..."},
		{"abc", 0, "abc"},
		{"abcdef", 3, "abc"},
	}

	for _, tc := range cases {
		if got := Truncate(tc.in, tc.max); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestIsObjectID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"65a1b2c3d4e5f6a7b8c9d0e1", true},
		{"65A1B2C3D4E5F6A7B8C9D0E1", true},
		{"65a1b2c3d4e5f6a7b8c9d0e", false},   // 23 chars
		{"65a1b2c3d4e5f6a7b8c9d0e1f", false}, // 25 chars
		{"65a1b2c3d4e5f6a7b8c9d0ez", false},  // non-hex
		{"", false},
	}

	for _, tc := range cases {
		if got := IsObjectID(tc.in); got != tc.want {
			t.Errorf("IsObjectID(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
