// Package bench solves batches of random inputs concurrently and reports
// operation count statistics. Every solution is verified by replay.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danieljhkim/pushswap/internal/clock"
	"github.com/danieljhkim/pushswap/internal/engine"
	"github.com/danieljhkim/pushswap/internal/gen"
	"github.com/danieljhkim/pushswap/internal/replay"
)

// ErrInvalidOptions is returned for a non-positive size, run count or
// parallelism.
var ErrInvalidOptions = errors.New("invalid benchmark options")

// Options configures a benchmark.
type Options struct {
	Size        int
	Runs        int
	Parallel    int
	Seed        uint64
	Budget      int
	MaxBranches int

	// Clock times the runs; nil means the system clock.
	Clock clock.Clock
}

// Run is the outcome of one solve.
type Run struct {
	Seed     uint64        `json:"seed"`
	Ops      int           `json:"ops"`
	Duration time.Duration `json:"duration_ns"`
}

// Report aggregates a benchmark.
type Report struct {
	Size  int     `json:"size"`
	Runs  int     `json:"runs"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
	Mean  float64 `json:"mean"`
	Worst Run     `json:"worst"`
	// Elapsed is the wall time of the whole batch.
	Elapsed time.Duration `json:"elapsed_ns"`
}

func (o *Options) validate() error {
	if o.Size < 0 {
		return fmt.Errorf("%w: size must not be negative (got %d)", ErrInvalidOptions, o.Size)
	}
	if o.Runs < 1 {
		return fmt.Errorf("%w: runs must be at least 1 (got %d)", ErrInvalidOptions, o.Runs)
	}
	if o.Parallel < 1 {
		return fmt.Errorf("%w: parallel must be at least 1 (got %d)", ErrInvalidOptions, o.Parallel)
	}
	return nil
}

// Execute solves opts.Runs random permutations of opts.Size values, at most
// opts.Parallel at a time. Run i uses seed opts.Seed+i, so a run can be
// reproduced with `gen --seed`. A zero seed picks a random base seed.
func Execute(ctx context.Context, eng *engine.Engine, opts Options) (*Report, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	base := opts.Seed
	if base == 0 {
		base = gen.NewRand(0).Uint64()>>1 + 1
	}

	clk := clock.OrSystem(opts.Clock)
	runs := make([]Run, opts.Runs)
	start := clk.Now()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel)
	for i := range runs {
		i := i
		seed := base + uint64(i)
		g.Go(func() error {
			run, err := solveOne(gCtx, eng, clk, opts, seed)
			if err != nil {
				return fmt.Errorf("run %d (seed %d): %w", i, seed, err)
			}
			runs[i] = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := summarize(runs)
	report.Size = opts.Size
	report.Elapsed = clock.Since(clk, start)
	return report, nil
}

func solveOne(ctx context.Context, eng *engine.Engine, clk clock.Clock, opts Options, seed uint64) (Run, error) {
	values := gen.Permutation(gen.NewRand(seed), opts.Size)

	start := clk.Now()
	res, err := eng.Solve(ctx, &engine.SolveRequest{
		Values:      values,
		Budget:      opts.Budget,
		MaxBranches: opts.MaxBranches,
	})
	if err != nil {
		return Run{}, err
	}
	elapsed := clock.Since(clk, start)

	if err := replay.Verify(values, res.Ops); err != nil {
		return Run{}, err
	}
	return Run{Seed: seed, Ops: len(res.Ops), Duration: elapsed}, nil
}

// summarize computes statistics over runs. The first run with the highest
// count is reported as the worst.
func summarize(runs []Run) *Report {
	r := &Report{Runs: len(runs)}
	if len(runs) == 0 {
		return r
	}
	r.Min, r.Max = runs[0].Ops, runs[0].Ops
	r.Worst = runs[0]
	total := 0
	for _, run := range runs {
		total += run.Ops
		if run.Ops < r.Min {
			r.Min = run.Ops
		}
		if run.Ops > r.Max {
			r.Max = run.Ops
			r.Worst = run
		}
	}
	r.Mean = float64(total) / float64(len(runs))
	return r
}
