package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/specialistvlad/adventgrid/internal/aoc"
	"github.com/specialistvlad/adventgrid/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const trebuchetP1 = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

func TestRun_Manifests(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"inputs/day01.txt": trebuchetP1,
		"aoc.hcl": `
puzzle "trebuchet" {
  day    = 1
  parts  = [1]
  input  = "inputs/day01.txt"
  expect = { part1 = 142 }
}
`,
		"more/mirage.yaml": `
puzzles:
  - name: mirage
    day: 9
    inline: |
      0 3 6 9 12 15
      1 3 6 10 15 21
      10 13 16 21 30 45
    expect:
      part1: 114
      part2: 2
`,
	})

	a, out, _ := SetupAppTest(t, &Config{ManifestPath: root})
	require.NoError(t, a.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"day01/part1\ttrebuchet\t142\tok",
		"day09/part1\tmirage\t114\tok",
		"day09/part2\tmirage\t2\tok",
	}, lines)
}

func TestRun_ReportsEveryMismatchAndFailure(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"aoc.hcl": `
puzzle "wrong" {
  day    = 1
  parts  = [1]
  inline = "1abc2"
  expect = { part1 = 13 }
}

puzzle "broken" {
  day    = 1
  parts  = [1]
  inline = "abc"
}
`,
	})

	a, out, _ := SetupAppTest(t, &Config{ManifestPath: filepath.Join(root, "aoc.hcl")})
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMismatch)
	assert.Contains(t, err.Error(), "got 12, want 13")
	assert.Contains(t, err.Error(), "broken: day01/part1")
	assert.Contains(t, out.String(), "MISMATCH (want 13)")
}

func TestRun_DaySelection(t *testing.T) {
	root := writeFiles(t, map[string]string{"day01.txt": trebuchetP1})

	testCases := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "default input in input dir",
			cfg:  Config{Day: 1, Part: 1, InputDir: root},
			want: "day01/part1\tday01.txt\t142\n",
		},
		{
			name: "explicit input path",
			cfg:  Config{Day: 1, Part: 1, InputPath: filepath.Join(root, "day01.txt")},
			want: "day01/part1\tday01.txt\t142\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			a, out, _ := SetupAppTest(t, &cfg)
			require.NoError(t, a.Run(context.Background()))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestRun_MissingInput(t *testing.T) {
	a, _, _ := SetupAppTest(t, &Config{Day: 3, InputDir: t.TempDir()})
	err := a.Run(context.Background())
	require.ErrorContains(t, err, "failed to read input")
}

func TestRun_InvalidManifest(t *testing.T) {
	testCases := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name:     "day out of range",
			manifest: "puzzles:\n  - name: a\n    day: 30\n    inline: x\n",
			wantErr:  "day 30 out of range",
		},
		{
			name:     "duplicate part",
			manifest: "puzzles:\n  - name: a\n    day: 1\n    parts: [1, 1]\n    inline: x\n",
			wantErr:  "part 1 listed more than once",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := writeFiles(t, map[string]string{"aoc.yaml": tc.manifest})
			a, out, _ := SetupAppTest(t, &Config{ManifestPath: root})
			err := a.Run(context.Background())
			require.ErrorContains(t, err, "invalid manifest")
			require.ErrorContains(t, err, tc.wantErr)
			assert.Empty(t, out.String())
		})
	}
}

// gauge registers a day whose solvers record how many run at once.
type gauge struct {
	day          int
	running, max atomic.Int32
}

func (g *gauge) Register(r *registry.Registry) {
	solver := registry.Func(func(string) (int, error) {
		n := g.running.Add(1)
		defer g.running.Add(-1)
		for {
			m := g.max.Load()
			if n <= m || g.max.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		return int(n), nil
	})
	r.Register(registry.Key{Day: g.day, Part: 1}, solver)
	r.Register(registry.Key{Day: g.day, Part: 2}, solver)
}

func TestRun_WorkerLimit(t *testing.T) {
	var manifest strings.Builder
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		manifest.WriteString(`puzzle "` + name + `" {
  day    = 7
  inline = "x"
}
`)
	}
	root := writeFiles(t, map[string]string{"aoc.hcl": manifest.String()})

	g := &gauge{day: 7}
	a, out, _ := SetupAppTest(t, &Config{ManifestPath: root, WorkerCount: 2}, g)
	require.NoError(t, a.Run(context.Background()))

	assert.LessOrEqual(t, g.max.Load(), int32(2))
	assert.Equal(t, 12, strings.Count(out.String(), "\n"))
}

// fragile registers a day whose first part panics on any input.
type fragile struct{ day int }

func (f fragile) Register(r *registry.Registry) {
	r.Register(registry.Key{Day: f.day, Part: 1}, registry.Func(func(in string) (int, error) {
		var fields []string
		return len(fields[len(in)]), nil
	}))
	r.Register(registry.Key{Day: f.day, Part: 2}, registry.Func(func(in string) (int, error) {
		return len(in), nil
	}))
}

func TestRun_SolverPanicBecomesError(t *testing.T) {
	root := writeFiles(t, map[string]string{"aoc.hcl": `
puzzle "brittle" {
  day    = 9
  inline = "xyz"
}
`})
	a, out, logs := SetupAppTest(t, &Config{ManifestPath: root}, fragile{day: 9})

	err := a.Run(context.Background())
	require.ErrorIs(t, err, ErrSolverPanic)
	assert.Contains(t, out.String(), "day09/part1\tbrittle\terror: day09/part1: solver panicked: runtime error: index out of range")
	assert.Contains(t, out.String(), "day09/part2\tbrittle\t3\n")
	assert.Contains(t, logs.String(), "Solver failed.")
}

func TestRun_Canceled(t *testing.T) {
	a, _, _ := SetupAppTest(t, &Config{Day: 7, InputPath: writeFiles(t, map[string]string{"in.txt": "x"}) + "/in.txt"}, &gauge{day: 7})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := a.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewApp_RegistersAllDays(t *testing.T) {
	a, _, _ := SetupAppTest(t, &Config{Day: 1})
	assert.Equal(t, 49, a.Registry().Len())
	assert.Equal(t, []int{1}, a.Registry().Parts(25))
}

func TestRegistry_WhitespaceInputIsAnError(t *testing.T) {
	a, _, _ := SetupAppTest(t, &Config{Day: 1})
	for _, key := range a.Registry().Keys() {
		t.Run(key.String(), func(t *testing.T) {
			_, err := a.Registry().Solve(context.Background(), key, " \t\n")
			require.ErrorIs(t, err, aoc.ErrEmptyInput)
		})
	}
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       Config
		expectErr string
	}{
		{name: "manifest", cfg: Config{ManifestPath: "aoc.hcl", WorkerCount: 1}},
		{name: "day", cfg: Config{Day: 5, Part: 2, WorkerCount: 1}},
		{name: "error - nothing to run", cfg: Config{WorkerCount: 1}, expectErr: "either a manifest path or a day"},
		{name: "error - both", cfg: Config{ManifestPath: "x", Day: 1, WorkerCount: 1}, expectErr: "cannot be combined"},
		{name: "error - day range", cfg: Config{Day: 26, WorkerCount: 1}, expectErr: "day 26 out of range"},
		{name: "error - part range", cfg: Config{Day: 1, Part: 3, WorkerCount: 1}, expectErr: "part 3 out of range"},
		{name: "error - part without day", cfg: Config{ManifestPath: "x", Part: 1, WorkerCount: 1}, expectErr: "require a day"},
		{name: "error - workers", cfg: Config{Day: 1}, expectErr: "worker count"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewConfig(tc.cfg)
			if tc.expectErr != "" {
				require.ErrorContains(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg, *got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf SafeBuffer
	newLogger("warn", "json", &buf).Info("hidden")
	newLogger("warn", "json", &buf).Warn("shown", "day", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"day":3`)
}
