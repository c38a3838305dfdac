package day02

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// Set is one handful of cubes revealed from the bag.
type Set struct {
	Red, Green, Blue int
}

// Game is a numbered sequence of reveals.
type Game struct {
	ID    int
	Draws []Set
}

var bag = Set{Red: 12, Green: 13, Blue: 14}

// Parse reads lines of the form "Game 1: 3 blue, 4 red; 1 red, 2 green".
func Parse(input string) ([]Game, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return nil, err
	}
	games := make([]Game, 0, len(lines))
	for i, l := range lines {
		g, err := parseGame(l)
		if err != nil {
			return nil, aoc.LineError(i, err)
		}
		games = append(games, g)
	}
	return games, nil
}

func parseGame(l string) (Game, error) {
	head, body, ok := strings.Cut(l, ":")
	if !ok || !strings.HasPrefix(head, "Game ") {
		return Game{}, fmt.Errorf("malformed game %q", l)
	}
	id, err := aoc.Atoi(strings.TrimPrefix(head, "Game "))
	if err != nil {
		return Game{}, err
	}
	g := Game{ID: id}
	for _, draw := range strings.Split(body, ";") {
		var s Set
		for _, item := range strings.Split(draw, ",") {
			var (
				n     int
				color string
			)
			if _, err := fmt.Sscanf(strings.TrimSpace(item), "%d %s", &n, &color); err != nil {
				return Game{}, fmt.Errorf("malformed cubes %q: %w", item, err)
			}
			switch color {
			case "red":
				s.Red += n
			case "green":
				s.Green += n
			case "blue":
				s.Blue += n
			default:
				return Game{}, fmt.Errorf("unknown colour %q", color)
			}
		}
		g.Draws = append(g.Draws, s)
	}
	return g, nil
}

// Minimum is the smallest bag that could have produced every draw of g.
func (g Game) Minimum() Set {
	var m Set
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// Part1 sums the IDs of games possible with 12 red, 13 green and 14 blue cubes.
func Part1(input string) (int, error) {
	games, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		m := g.Minimum()
		if m.Red <= bag.Red && m.Green <= bag.Green && m.Blue <= bag.Blue {
			sum += g.ID
		}
	}
	return sum, nil
}

// Part2 sums the power of each game's minimum set.
func Part2(input string) (int, error) {
	games, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		m := g.Minimum()
		sum += m.Red * m.Green * m.Blue
	}
	return sum, nil
}
