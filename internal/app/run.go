package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/specialistvlad/adventgrid/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrMismatch marks an answer that differs from the manifest's expectation.
	ErrMismatch = errors.New("answer mismatch")
	// ErrSolverPanic marks a job whose solver panicked.
	ErrSolverPanic = errors.New("solver panicked")
)

type result struct {
	job
	answer  string
	err     error
	elapsed time.Duration
}

// Run solves every job on a bounded worker pool, prints one line per result
// in (day, part) order and returns an error naming every failure and
// mismatch.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	jobs, err := a.buildJobs(ctx)
	if err != nil {
		return err
	}

	a.logger.Info("🚀 Solving puzzles...", "jobs", len(jobs), "workers", a.config.WorkerCount)
	results := make([]result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.WorkerCount)
	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.solve(gctx, j)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("run interrupted: %w", err)
	}
	a.logger.Info("🏁 All puzzles finished.")

	return a.report(results)
}

func (a *App) solve(ctx context.Context, j job) result {
	ctx = ctxlog.With(ctx, "key", j.key.String(), "puzzle", j.name)
	start := time.Now()
	answer, err := a.call(ctx, j)
	r := result{job: j, answer: answer, err: err, elapsed: time.Since(start)}
	if err != nil {
		ctxlog.FromContext(ctx).Error("Solver failed.", "error", err)
	} else {
		ctxlog.FromContext(ctx).Debug("Solver finished.", "elapsed", r.elapsed)
	}
	return r
}

// call runs the job's solver, turning a panic into the job's error so the
// rest of the run still reports.
func (a *App) call(ctx context.Context, j job) (answer string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: %w: %v", j.key, ErrSolverPanic, p)
		}
	}()
	return a.registry.Solve(ctx, j.key, j.input)
}

// report prints the results and collects the failures.
func (a *App) report(results []result) error {
	var errs []error
	for _, r := range results {
		switch {
		case r.err != nil:
			fmt.Fprintf(a.outW, "%s\t%s\terror: %v\n", r.key, r.name, r.err)
			errs = append(errs, fmt.Errorf("%s: %w", r.name, r.err))
		case r.expect != "" && r.answer != r.expect:
			fmt.Fprintf(a.outW, "%s\t%s\t%s\tMISMATCH (want %s)\n", r.key, r.name, r.answer, r.expect)
			errs = append(errs, fmt.Errorf("%s %s: got %s, want %s: %w", r.key, r.name, r.answer, r.expect, ErrMismatch))
		case r.expect != "":
			fmt.Fprintf(a.outW, "%s\t%s\t%s\tok\n", r.key, r.name, r.answer)
		default:
			fmt.Fprintf(a.outW, "%s\t%s\t%s\n", r.key, r.name, r.answer)
		}
	}
	return errors.Join(errs...)
}
