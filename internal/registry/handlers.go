package registry

import (
	"context"
	"fmt"
)

// Solver computes one part of one day's puzzle from its raw input text and
// returns the answer in printable form.
type Solver func(ctx context.Context, input string) (string, error)

// Func adapts a plain solver function with a typed answer into a Solver.
func Func[T any](fn func(input string) (T, error)) Solver {
	return func(_ context.Context, input string) (string, error) {
		v, err := fn(input)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	}
}

// FuncCtx is Func for solvers that honour cancellation.
func FuncCtx[T any](fn func(ctx context.Context, input string) (T, error)) Solver {
	return func(ctx context.Context, input string) (string, error) {
		v, err := fn(ctx, input)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	}
}
