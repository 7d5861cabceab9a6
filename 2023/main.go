package main

import (
	_ "embed"

	"github.com/aoc-solutions/aoc"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func add(a, b int) int { return a + b }

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return aoc.ParallelMapFold(s.Lines(), func(line string) int {
		return calibrationValue(line, false)
	}, add, 0)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return aoc.ParallelMapFold(s.Lines(), func(line string) int {
		v := calibrationValue(line, true)
		s.Debugf("%s -> %d", line, v)
		return v
	}, add, 0)
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	var sum int
	s.ForLines(func(line string) {
		if g := parseGame(line); g.possible(bag) {
			sum += g.id
		}
	})
	return sum
}

// want=2286
func (s solver) D2p2() any {
	var powers []int
	s.ForLines(func(line string) {
		powers = append(powers, parseGame(line).minimumSet().power())
	})
	return aoc.Sum(powers...)
}
