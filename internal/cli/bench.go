package cli

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/pushswap/internal/bench"
)

func newBenchCmd(a *app) *cobra.Command {
	opts := bench.Options{
		Size:     100,
		Runs:     20,
		Parallel: runtime.NumCPU(),
	}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve random inputs and report operation counts",
		Long: `Solve --runs random permutations of --size values, --parallel at a time,
verify every solution by replaying it, and report the smallest, largest and
mean operation counts.

Run i uses seed --seed+i, so the worst run can be reproduced with
"pushswap gen <size> --seed <seed>".`,
		Example: `  pushswap bench --size 500 --runs 100
  pushswap bench --size 100 --seed 1 --budget 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			eng, err := a.newEngine()
			if err != nil {
				return err
			}

			opts.Budget = a.cfg.Budget
			opts.MaxBranches = a.cfg.MaxBranches
			report, err := bench.Execute(cmd.Context(), eng, opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.json {
				return outputJSON(w, report)
			}
			printLabelValue(w, "Size", fmt.Sprintf("%d", report.Size))
			printLabelValue(w, "Runs", fmt.Sprintf("%d", report.Runs))
			printLabelValue(w, "Min", fmt.Sprintf("%d", report.Min))
			printLabelValue(w, "Max", fmt.Sprintf("%d", report.Max))
			printLabelValue(w, "Mean", fmt.Sprintf("%.1f", report.Mean))
			printLabelValue(w, "Worst seed", fmt.Sprintf("%d", report.Worst.Seed))
			printLabelValue(w, "Elapsed", report.Elapsed.Round(time.Millisecond).String())
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Size, "size", opts.Size, "Values per input")
	cmd.Flags().IntVar(&opts.Runs, "runs", opts.Runs, "Number of inputs to solve")
	cmd.Flags().IntVar(&opts.Parallel, "parallel", opts.Parallel, "Solves running at once")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Base random seed (0 = random)")
	return cmd
}
