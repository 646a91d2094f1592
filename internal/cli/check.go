package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/pushswap/internal/input"
	"github.com/danieljhkim/pushswap/internal/replay"
)

type checkOutput struct {
	Verdict replay.Verdict `json:"verdict"`
	Applied int            `json:"applied"`
	A       []int          `json:"a"`
	B       []int          `json:"b"`
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [numbers...]",
		Short: "Replay operations from stdin and report OK or KO",
		Long: `Read operations from stdin, one per line, apply them to the given numbers,
and print OK when stack A ends ascending with stack B empty, KO otherwise.

An unknown operation is an error. Without numbers, nothing is read or printed.`,
		Example: `  pushswap 3 1 2 | pushswap check 3 1 2`,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			res, err := replay.Check(values, cmd.InOrStdin())
			if err != nil {
				return err
			}
			a.log.V(1).Info("replayed", "ops", res.Applied, "verdict", string(res.Verdict))

			w := cmd.OutOrStdout()
			if a.json {
				return outputJSON(w, checkOutput{
					Verdict: res.Verdict,
					Applied: res.Applied,
					A:       res.Machine.A().Values(),
					B:       res.Machine.B().Values(),
				})
			}
			printVerdict(w, res.Verdict)
			return nil
		},
	}
}
