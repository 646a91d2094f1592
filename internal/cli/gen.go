package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/pushswap/internal/gen"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		seed    uint64
		spacing int
	)

	cmd := &cobra.Command{
		Use:   "gen <n>",
		Short: "Print n distinct integers in random order",
		Long: `Print a random permutation of 0..n-1 on one line.

With --spacing, the values are instead spread that far apart and centred on
zero, so the output includes negative numbers.`,
		Example: `  pushswap gen 100
  pushswap gen 500 --seed 42 --spacing 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("invalid count %q: expected a non-negative integer", args[0])
			}

			r := gen.NewRand(seed)
			var values []int
			if spacing > 0 {
				values = gen.Spaced(r, n, spacing)
			} else {
				values = gen.Permutation(r, n)
			}

			w := cmd.OutOrStdout()
			if a.json {
				return outputJSON(w, values)
			}
			fields := make([]string, len(values))
			for i, v := range values {
				fields[i] = strconv.Itoa(v)
			}
			_, err = fmt.Fprintln(w, strings.Join(fields, " "))
			return err
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 = random)")
	cmd.Flags().IntVar(&spacing, "spacing", 0, "Distance between values, centred on zero (0 = plain 0..n-1)")
	return cmd
}
