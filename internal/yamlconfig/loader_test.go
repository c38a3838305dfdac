package yamlconfig

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
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeFile(t, `
puzzles:
  - name: trebuchet
    day: 1
    parts: [1, 2]
    input: inputs/day01.txt
    expect:
      part1: 142
      part2: "281"
  - name: hash
    day: 15
    inline: |
      HASH
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
			Name:  "hash",
			Day:   15,
			Input: "HASH\n",
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
			name:      "unknown field",
			content:   "puzzles:\n  - name: a\n    days: 1\n",
			expectErr: "failed to decode",
		},
		{
			name:      "bad expect key",
			content:   "puzzles:\n  - name: a\n    day: 1\n    expect:\n      first: 1\n",
			expectErr: "invalid expectation key",
		},
		{
			name:      "non-scalar answer",
			content:   "puzzles:\n  - name: a\n    day: 1\n    expect:\n      part1: [1]\n",
			expectErr: "must be a scalar",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().Load(context.Background(), writeFile(t, tc.content))
			require.ErrorContains(t, err, tc.expectErr)
		})
	}

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read")
}

func TestLoader_EmptyFile(t *testing.T) {
	m, err := NewLoader().Load(context.Background(), writeFile(t, ""))
	require.NoError(t, err)
	require.Empty(t, m.Puzzles)
}
