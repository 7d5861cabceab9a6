package main

import (
	"log"
	"strings"

	"github.com/aoc-solutions/aoc"
)

// cubeSet is a count of cubes per colour.
type cubeSet struct {
	red, green, blue int
}

// bag is what the elf has loaded into the bag.
var bag = cubeSet{red: 12, green: 13, blue: 14}

func (c cubeSet) fits(in cubeSet) bool {
	return c.red <= in.red && c.green <= in.green && c.blue <= in.blue
}

func (c cubeSet) power() int {
	return c.red * c.green * c.blue
}

type game struct {
	id      int
	reveals []cubeSet
}

// parseGame parses a line like
//
//	Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green
func parseGame(line string) game {
	head, rest, ok := strings.Cut(line, ":")
	if !ok {
		log.Fatalf("bad game: %q", line)
	}
	g := game{id: aoc.Int(aoc.TrimPrefix(head, "Game "))}
	for _, r := range aoc.Fields(rest, ";") {
		g.reveals = append(g.reveals, parseReveal(r))
	}
	return g
}

func parseReveal(s string) cubeSet {
	var c cubeSet
	for _, f := range aoc.Fields(s, ",") {
		n, colour, ok := strings.Cut(f, " ")
		if !ok {
			log.Fatalf("bad cube count: %q", f)
		}
		switch colour {
		case "red":
			c.red = aoc.Int(n)
		case "green":
			c.green = aoc.Int(n)
		case "blue":
			c.blue = aoc.Int(n)
		default:
			log.Fatalf("unknown colour %q", colour)
		}
	}
	return c
}

// possible reports whether every reveal of g could have been drawn from b.
func (g game) possible(b cubeSet) bool {
	for _, r := range g.reveals {
		if !r.fits(b) {
			return false
		}
	}
	return true
}

// minimumSet returns the fewest cubes of each colour that make g possible.
func (g game) minimumSet() cubeSet {
	var m cubeSet
	for _, r := range g.reveals {
		m.red = aoc.Max(m.red, r.red)
		m.green = aoc.Max(m.green, r.green)
		m.blue = aoc.Max(m.blue, r.blue)
	}
	return m
}
