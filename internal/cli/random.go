package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/swaptrace/swapplan"
)

// randomCommand creates the random command, which generates a seeded
// instance and plans it.
func (c *CLI) randomCommand() *cobra.Command {
	var (
		n     int
		seed  int64
		flags planFlags
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random instance and plan it",
		Long: `Generate a random instance of length n (values 0..n-2 plus the
sentinel -1) and plan it. The same --seed always yields the same instance;
seed 0 uses a fixed default.`,
		Example: `  swaptrace random -n 10 --seed 42
  swaptrace random -n 1000 --lookup index -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst, err := swapplan.RandomInstance(n, seed)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			loggerFromContext(cmd.Context()).Debug("generated instance", "n", n, "seed", seed)

			p := problem{Source: src, Destination: dst, Sentinel: swapplan.DefaultSentinel}
			return c.runPlan(cmd.Context(), cmd.OutOrStdout(), p, flags, true)
		},
	}

	cmd.Flags().IntVarP(&n, "length", "n", 8, "instance length (≥ 1)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = fixed default)")
	flags.register(cmd)

	return cmd
}
