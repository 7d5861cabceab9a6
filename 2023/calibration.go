package main

import (
	"cmp"
	"slices"

	"github.com/aoc-solutions/aoc"
)

var digitWords = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// occurrence is a digit found in a line: the index of its first byte and
// its value as an ASCII digit.
type occurrence struct {
	pos   int
	digit byte
}

// calibrationValue returns the number formed by the first and last digit
// in line, or 0 if line has none. If spelled is set, the words "one"
// through "nine" count as digits too. Words may overlap, so "eightwo"
// holds both an 8 and a 2.
func calibrationValue(line string, spelled bool) int {
	var occs []occurrence
	for i, r := range line {
		if aoc.IsDigit(r) {
			occs = append(occs, occurrence{pos: i, digit: byte(r)})
		}
	}
	if spelled {
		for n, w := range digitWords {
			for _, i := range aoc.IndexAll(line, w) {
				occs = append(occs, occurrence{pos: i, digit: byte('1' + n)})
			}
		}
	}
	if len(occs) == 0 {
		return 0
	}
	slices.SortStableFunc(occs, func(a, b occurrence) int {
		return cmp.Compare(a.pos, b.pos)
	})
	first, last := occs[0], occs[len(occs)-1]
	return aoc.Int(string([]byte{first.digit, last.digit}))
}
