package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
		ok      bool
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want:  "1",
				input: "some-input\n",
			},
			ok: true,
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want:  "1234",
				input: "multi-line-input\nother-line\nother-line-2\n",
			},
			ok: true,
		},
		{
			comment: "// want=42",
			want:    sample{want: "42"},
			ok:      true,
		},
		{
			comment: "// D1p1 solves part one.",
		},
	}

	for _, tt := range tests {
		got, ok := parseSample(tt.comment)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseSample(%q) = %+v, %v; want %+v, %v", tt.comment, got, ok, tt.want, tt.ok)
		}
	}
}

const solverSrc = `package main

/*
want=3

a
b
*/
func (s solver) D1p1() any { return nil }

// want=5
func (s solver) D1p2() any { return nil }

// helper has no sample.
func helper() {}
`

func TestExtractSamples(t *testing.T) {
	got := extractSamples([]byte(solverSrc))
	want := map[string]sample{
		"D1p1": {want: "3", input: "a\nb\n"},
		"D1p2": {want: "5", input: "a\nb\n"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(sample{})); diff != "" {
		t.Errorf("extractSamples mismatch (-want +got):\n%s", diff)
	}
}

type testSolver struct {
	*Puzzle
}

func (testSolver) D2p1() any { return 21 }
func (testSolver) D1p2() any { return 12 }
func (testSolver) D1p1() any { return 11 }
func (testSolver) Helper() any { return nil }

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&testSolver{})
	if len(days) != 2 {
		t.Fatalf("got %d days; want 2", len(days))
	}
	var got []string
	for _, ps := range days[1].parts {
		got = append(got, ps.Name)
	}
	if diff := cmp.Diff([]string{"D1p1", "D1p2"}, got); diff != "" {
		t.Errorf("day 1 parts mismatch (-want +got):\n%s", diff)
	}
	if got := days[2].parts[0].fn(); got != 21 {
		t.Errorf("D2p1() = %v; want 21", got)
	}
}

func TestLines(t *testing.T) {
	p := &Puzzle{
		SampleMode: true,
		solver:     partSolver{Name: "D1p1"},
		samples:    map[string]sample{"D1p1": {input: "x\ny\n\nz\n"}},
	}
	if diff := cmp.Diff([]string{"x", "y", "", "z"}, p.Lines()); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestParallelMapFold(t *testing.T) {
	in := []string{"1", "22", "333"}
	got := ParallelMapFold(in, Int, func(acc []int, v int) []int {
		return append(acc, v)
	}, nil)
	if diff := cmp.Diff([]int{1, 22, 333}, got); diff != "" {
		t.Errorf("results out of order (-want +got):\n%s", diff)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "b", "c"); got != "b" {
		t.Errorf(`Or("", "b", "c") = %q; want "b"`, got)
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or(0, 0) = %d; want 0", got)
	}
}
