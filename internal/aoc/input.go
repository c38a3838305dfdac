package aoc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyInput is returned by Lines and Blocks when there is nothing to parse.
var ErrEmptyInput = errors.New("empty input")

// Lines splits input into lines. Carriage returns and leading or trailing
// blank lines are dropped. Input holding only whitespace is empty.
func Lines(input string) ([]string, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}
	input = strings.Trim(input, "\n ")
	return strings.Split(input, "\n"), nil
}

// Blocks splits input into groups of lines separated by blank lines.
func Blocks(input string) ([][]string, error) {
	lines, err := Lines(input)
	if err != nil {
		return nil, err
	}
	var (
		blocks [][]string
		cur    []string
	)
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	if len(blocks) == 0 {
		return nil, ErrEmptyInput
	}
	return blocks, nil
}

// Ints extracts every signed decimal integer from s, in order. Any non-digit
// character other than a leading '-' acts as a separator.
func Ints(s string) ([]int, error) {
	var out []int
	for i := 0; i < len(s); {
		c := s[i]
		neg := c == '-' && i+1 < len(s) && isDigit(s[i+1])
		if !isDigit(c) && !neg {
			i++
			continue
		}
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		n, err := strconv.Atoi(s[i:j])
		if err != nil {
			return nil, fmt.Errorf("parse int %q: %w", s[i:j], err)
		}
		out = append(out, n)
		i = j
	}
	return out, nil
}

// Fields parses whitespace separated integers, failing on anything else.
func Fields(s string) ([]int, error) {
	fs := strings.Fields(s)
	out := make([]int, 0, len(fs))
	for _, f := range fs {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse int %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Atoi is strconv.Atoi with the offending text in the error.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse int %q: %w", s, err)
	}
	return n, nil
}

// LineError annotates err with a 1-based line number.
func LineError(line int, err error) error {
	return fmt.Errorf("line %d: %w", line+1, err)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
