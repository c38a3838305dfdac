package registry

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/specialistvlad/adventgrid/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModule struct {
	day int
}

func (m fakeModule) Register(r *Registry) {
	r.Register(Key{Day: m.day, Part: 1}, Func(func(in string) (int, error) { return len(in), nil }))
	r.Register(Key{Day: m.day, Part: 2}, Func(func(in string) (string, error) {
		if in == "" {
			return "", errors.New("empty")
		}
		return in + in, nil
	}))
}

func testCtx() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestRegistry_Solve(t *testing.T) {
	r := New(fakeModule{day: 3}, fakeModule{day: 1})
	ctx := testCtx()

	got, err := r.Solve(ctx, Key{Day: 3, Part: 1}, "abcd")
	require.NoError(t, err)
	assert.Equal(t, "4", got)

	got, err = r.Solve(ctx, Key{Day: 1, Part: 2}, "ab")
	require.NoError(t, err)
	assert.Equal(t, "abab", got)

	_, err = r.Solve(ctx, Key{Day: 1, Part: 2}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day01/part2")

	_, err = r.Solve(ctx, Key{Day: 2, Part: 1}, "x")
	require.ErrorIs(t, err, ErrNotRegistered)
}

func TestRegistry_KeysSorted(t *testing.T) {
	r := New(fakeModule{day: 10}, fakeModule{day: 2})
	assert.Equal(t, []Key{{2, 1}, {2, 2}, {10, 1}, {10, 2}}, r.Keys())
	assert.Equal(t, []int{1, 2}, r.Parts(10))
	assert.Empty(t, r.Parts(5))
	assert.Equal(t, 4, r.Len())
}

func TestRegistry_RegisterPanics(t *testing.T) {
	testCases := []struct {
		name string
		fn   func(r *Registry)
	}{
		{
			name: "duplicate key",
			fn:   func(r *Registry) { fakeModule{day: 4}.Register(r) },
		},
		{
			name: "day out of range",
			fn:   func(r *Registry) { r.Register(Key{Day: 26, Part: 1}, Func(func(string) (int, error) { return 0, nil })) },
		},
		{
			name: "part out of range",
			fn:   func(r *Registry) { r.Register(Key{Day: 1, Part: 3}, Func(func(string) (int, error) { return 0, nil })) },
		},
		{
			name: "nil solver",
			fn:   func(r *Registry) { r.Register(Key{Day: 1, Part: 1}, nil) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := New(fakeModule{day: 4})
			assert.Panics(t, func() { tc.fn(r) })
		})
	}
}

func TestFuncCtx_PropagatesCancellation(t *testing.T) {
	s := FuncCtx(func(ctx context.Context, _ string) (int, error) {
		return 0, ctx.Err()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s(ctx, "")
	require.ErrorIs(t, err, context.Canceled)
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "day07/part2", Key{Day: 7, Part: 2}.String())
	require.NoError(t, Key{Day: 25, Part: 1}.Validate())
	require.Error(t, Key{Day: 0, Part: 1}.Validate())
}
