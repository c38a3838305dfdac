package day12

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// Row is one line of the condition records.
type Row struct {
	Springs string
	Groups  []int
}

// Parse reads lines of the form "???.### 1,1,3".
func Parse(input string) ([]Row, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(lines))
	for i, line := range lines {
		springs, groups, ok := strings.Cut(line, " ")
		if !ok {
			return nil, aoc.LineError(i, fmt.Errorf("missing group list"))
		}
		if strings.Trim(springs, ".#?") != "" {
			return nil, aoc.LineError(i, fmt.Errorf("unexpected spring in %q", springs))
		}
		var row Row
		row.Springs = springs
		for _, f := range strings.Split(groups, ",") {
			n, err := aoc.Atoi(f)
			if err != nil {
				return nil, aoc.LineError(i, err)
			}
			if n <= 0 {
				return nil, aoc.LineError(i, fmt.Errorf("group size %d", n))
			}
			row.Groups = append(row.Groups, n)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Unfold repeats the row five times, joining the springs with '?'.
func (r Row) Unfold() Row {
	springs := make([]string, 5)
	groups := make([]int, 0, 5*len(r.Groups))
	for i := range springs {
		springs[i] = r.Springs
		groups = append(groups, r.Groups...)
	}
	return Row{Springs: strings.Join(springs, "?"), Groups: groups}
}

// Arrangements counts the ways to assign the unknown springs so that the
// damaged runs match the group sizes.
func (r Row) Arrangements() int {
	s, groups := r.Springs, r.Groups
	n, m := len(s), len(groups)

	// ways[i][j] counts arrangements of s[i:] against groups[j:].
	ways := make([][]int, n+2)
	for i := range ways {
		ways[i] = make([]int, m+1)
	}
	ways[n][m] = 1
	ways[n+1][m] = 1

	for i := n - 1; i >= 0; i-- {
		for j := m; j >= 0; j-- {
			c := s[i]
			total := 0
			if c == '.' || c == '?' {
				total += ways[i+1][j]
			}
			if (c == '#' || c == '?') && j < m {
				end := i + groups[j]
				if end <= n && !strings.Contains(s[i:end], ".") && (end == n || s[end] != '#') {
					total += ways[end+1][j+1]
				}
			}
			ways[i][j] = total
		}
	}
	return ways[0][0]
}

func solve(input string, unfold bool) (int, error) {
	rows, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range rows {
		if unfold {
			r = r.Unfold()
		}
		total += r.Arrangements()
	}
	return total, nil
}

// Part1 sums the arrangement counts of every row.
func Part1(input string) (int, error) { return solve(input, false) }

// Part2 sums the arrangement counts of every unfolded row.
func Part2(input string) (int, error) { return solve(input, true) }
