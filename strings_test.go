package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIndexAll(t *testing.T) {
	tests := []struct {
		s, substr string
		want      []int
	}{
		{"eightwoeight", "eight", []int{0, 7}},
		{"aaaa", "aa", []int{0, 1, 2}},
		{"sevenine", "nine", []int{4}},
		{"oneight", "eight", []int{2}},
		{"abc", "d", nil},
		{"", "one", nil},
		{"abc", "", nil},
	}
	for _, tt := range tests {
		got := IndexAll(tt.s, tt.substr)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("IndexAll(%q, %q) mismatch (-want +got):\n%s", tt.s, tt.substr, diff)
		}
	}
}

func TestFields(t *testing.T) {
	got := Fields(" 3 blue, 4 red ", ",")
	if diff := cmp.Diff([]string{"3 blue", "4 red"}, got); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}
