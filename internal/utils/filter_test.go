package utils

import "testing"

func TestIsValidLetters(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"cat", true},
		{"CAT", true},
		{"ca*", true},
		{"", true},
		{"c4t", false},
		{"c-t", false},
		{"c t", false},
		{"caté", false},
	}
	for _, tc := range testCases {
		if got := IsValidLetters(tc.input); got != tc.want {
			t.Errorf("IsValidLetters(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
