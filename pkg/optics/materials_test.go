package optics

import "testing"

func TestLookupRefractiveIndex(t *testing.T) {
	cases := []struct {
		name     string
		expected float64
		known    bool
	}{
		{"bk7", 1.5168, true},
		{"BK7", 1.5168, true}, // case-insensitive
		{" water ", 1.333, true},
		{"air", 1.0, true},
		{"unobtainium", DefaultRefractiveIndex, false},
		{"", DefaultRefractiveIndex, false},
	}

	for _, tc := range cases {
		index, ok := LookupRefractiveIndex(tc.name)
		if ok != tc.known {
			t.Errorf("%q: known = %v, expected %v", tc.name, ok, tc.known)
		}
		if index != tc.expected {
			t.Errorf("%q: index = %f, expected %f", tc.name, index, tc.expected)
		}
	}
}
