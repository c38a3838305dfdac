package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/adventgrid/internal/config"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeFile(t, `
puzzle "trebuchet" {
  day    = 1
  parts  = [1, 2]
  input  = "inputs/day01.txt"
  expect = {
    part1 = 142
    part2 = "281"
  }
}

puzzle "lagoon" {
  day    = 18
  inline = <<EOT
R 6 (#70c710)
EOT
  expect = { part2 = 952408144115 }
}
`)

	m, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	want := &config.Manifest{Puzzles: []*config.Puzzle{
		{
			Name:      "trebuchet",
			Day:       1,
			Parts:     []int{1, 2},
			InputPath: filepath.Join(filepath.Dir(path), "inputs/day01.txt"),
			Expect:    map[int]string{1: "142", 2: "281"},
		},
		{
			Name:   "lagoon",
			Day:    18,
			Input:  "R 6 (#70c710)\n",
			Expect: map[int]string{2: "952408144115"},
		},
	}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_LoadErrors(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		expectErr string
	}{
		{
			name:      "syntax error",
			content:   `puzzle "a" {`,
			expectErr: "failed to parse",
		},
		{
			name:      "missing day",
			content:   `puzzle "a" { inline = "x" }`,
			expectErr: "failed to decode",
		},
		{
			name:      "bad expect key",
			content: `
puzzle "a" {
  day    = 1
  inline = "x"
  expect = { three = 1 }
}`,
			expectErr: "invalid expectation key",
		},
		{
			name:      "expect not an object",
			content: `
puzzle "a" {
  day    = 1
  inline = "x"
  expect = [1]
}`,
			expectErr: "expect must be an object",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().Load(context.Background(), writeFile(t, tc.content))
			require.ErrorContains(t, err, tc.expectErr)
		})
	}
}
