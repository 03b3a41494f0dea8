package model

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input    string
		expected Position
	}{
		{input: "C", expected: POS_C},
		{input: "c", expected: POS_C},
		{input: "LW", expected: POS_LW},
		{input: "lw", expected: POS_LW},
		{input: "RW", expected: POS_RW},
		{input: "rw", expected: POS_RW},
		{input: "D", expected: POS_D},
		{input: "d", expected: POS_D},
		{input: "G", expected: POS_G},
		{input: "g", expected: POS_G},
		{input: "UNKNOWN", expected: POS_UNKNOWN},
		{input: "F", expected: POS_UNKNOWN},
		{input: "", expected: POS_UNKNOWN},
	}

	for _, tc := range tests {
		a := ParsePosition(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestIsSkater(t *testing.T) {
	tests := []struct {
		pos      Position
		expected bool
	}{
		{pos: POS_C, expected: true},
		{pos: POS_LW, expected: true},
		{pos: POS_RW, expected: true},
		{pos: POS_D, expected: true},
		{pos: POS_G, expected: false},
		{pos: POS_UNKNOWN, expected: false},
	}

	for _, tc := range tests {
		if a := tc.pos.IsSkater(); a != tc.expected {
			t.Errorf("position: '%s', expected: %v, got %v", tc.pos, tc.expected, a)
		}
	}
}
