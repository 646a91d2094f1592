package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/pushswap/internal/engine"
	"github.com/danieljhkim/pushswap/internal/input"
	"github.com/danieljhkim/pushswap/internal/stack"
)

type solveOutput struct {
	Count      int          `json:"count"`
	Operations []stack.Op   `json:"operations"`
	Stats      engine.Stats `json:"stats"`
}

// runSolve prints the operations that sort the numbers in args. No numbers
// means no output.
func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	values, err := input.Parse(args)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	if err := a.setup(cmd); err != nil {
		return err
	}

	eng, err := a.newEngine()
	if err != nil {
		return err
	}

	result, err := eng.Solve(cmd.Context(), &engine.SolveRequest{
		Values:      values,
		Budget:      a.cfg.Budget,
		MaxBranches: a.cfg.MaxBranches,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if a.json {
		return outputJSON(w, solveOutput{
			Count:      len(result.Ops),
			Operations: result.Ops,
			Stats:      result.Stats,
		})
	}
	for _, op := range result.Ops {
		if _, err := fmt.Fprintln(w, op); err != nil {
			return err
		}
	}
	return nil
}
