package bench

import (
	"context"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/pushswap/internal/clock"
	"github.com/danieljhkim/pushswap/internal/engine"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.NewDefault(logr.Discard())
	require.NoError(t, err)
	return eng
}

func TestExecute(t *testing.T) {
	eng := newEngine(t)

	report, err := Execute(context.Background(), eng, Options{
		Size:     40,
		Runs:     12,
		Parallel: 4,
		Seed:     1,
		Budget:   1,
	})
	require.NoError(t, err)

	assert.Equal(t, 40, report.Size)
	assert.Equal(t, 12, report.Runs)
	assert.Positive(t, report.Min)
	assert.LessOrEqual(t, report.Min, report.Max)
	assert.GreaterOrEqual(t, report.Mean, float64(report.Min))
	assert.LessOrEqual(t, report.Mean, float64(report.Max))
	assert.Equal(t, report.Max, report.Worst.Ops)
	assert.GreaterOrEqual(t, report.Worst.Seed, uint64(1))
	assert.Less(t, report.Worst.Seed, uint64(13))
}

func TestExecute_Reproducible(t *testing.T) {
	eng := newEngine(t)
	opts := Options{Size: 25, Runs: 6, Parallel: 3, Seed: 77}

	first, err := Execute(context.Background(), eng, opts)
	require.NoError(t, err)
	opts.Parallel = 1
	second, err := Execute(context.Background(), eng, opts)
	require.NoError(t, err)

	assert.Equal(t, first.Min, second.Min)
	assert.Equal(t, first.Max, second.Max)
	assert.Equal(t, first.Mean, second.Mean)
	assert.Equal(t, first.Worst.Seed, second.Worst.Seed)
}

func TestExecute_Timing(t *testing.T) {
	eng := newEngine(t)
	runs := 5

	report, err := Execute(context.Background(), eng, Options{
		Size:     12,
		Runs:     runs,
		Parallel: 1,
		Seed:     9,
		Clock:    clock.NewStepper(time.Unix(0, 0), time.Millisecond),
	})
	require.NoError(t, err)

	// One reading before the batch, two per run, one after.
	assert.Equal(t, time.Duration(2*runs+1)*time.Millisecond, report.Elapsed)
	assert.Equal(t, time.Millisecond, report.Worst.Duration)
}

func TestExecute_TinySizes(t *testing.T) {
	eng := newEngine(t)

	for _, size := range []int{0, 1} {
		report, err := Execute(context.Background(), eng, Options{Size: size, Runs: 3, Parallel: 2, Seed: 5})
		require.NoError(t, err)
		assert.Zero(t, report.Max)
	}
}

func TestExecute_InvalidOptions(t *testing.T) {
	eng := newEngine(t)

	tests := []struct {
		name string
		opts Options
	}{
		{"negative size", Options{Size: -1, Runs: 1, Parallel: 1}},
		{"no runs", Options{Size: 5, Runs: 0, Parallel: 1}},
		{"no workers", Options{Size: 5, Runs: 1, Parallel: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Execute(context.Background(), eng, tt.opts)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestExecute_Cancelled(t *testing.T) {
	eng := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Execute(ctx, eng, Options{Size: 30, Runs: 4, Parallel: 2, Seed: 3})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	runs := []Run{{Seed: 1, Ops: 10}, {Seed: 2, Ops: 14}, {Seed: 3, Ops: 6}, {Seed: 4, Ops: 14}}

	r := summarize(runs)
	assert.Equal(t, 6, r.Min)
	assert.Equal(t, 14, r.Max)
	assert.InDelta(t, 11.0, r.Mean, 1e-9)
	assert.Equal(t, uint64(2), r.Worst.Seed)
}
