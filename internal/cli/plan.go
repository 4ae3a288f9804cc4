package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/swaptrace/swapplan"
)

// planFlags are the flags shared by plan and random.
type planFlags struct {
	lookup string
	format string
	trace  bool
}

func (f *planFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.lookup, "lookup", "linear", "position lookup strategy: linear or index")
	cmd.Flags().StringVarP(&f.format, "format", "f", formatText, "output format: text or json")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "log every step with the working array (implies debug logging)")
}

// planCommand creates the plan command.
func (c *CLI) planCommand() *cobra.Command {
	var (
		src, dst string
		file     string
		sentinel int
		flags    planFlags
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan the swaps from a source array to a destination array",
		Long: `Plan the swaps from a source array to a destination array.

Both arrays must hold the same distinct values plus exactly one sentinel,
the empty slot every swap goes through. Arrays come from --src/--dst or from
a TOML problem file; flags override values read from the file.`,
		Example: `  # Inline arrays
  swaptrace plan --src 1,2,3,-1,4,5 --dst 5,1,-1,3,2,4

  # Problem file, JSON output, O(n) lookups
  swaptrace plan --file problem.toml --lookup index -f json

  # Log every intermediate state
  swaptrace plan --src 0,1,2 --dst 2,1,0 --sentinel 0 --trace`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			p := problem{Sentinel: swapplan.DefaultSentinel}
			if file != "" {
				loaded, unknown, err := loadProblem(file)
				if err != nil {
					return err
				}
				for _, k := range unknown {
					logger.Warn("ignoring unknown key in problem file", "file", file, "key", k)
				}
				p = loaded
				logger.Debug("loaded problem file", "file", file, "n", len(p.Source))
			}

			var err error
			if cmd.Flags().Changed("src") {
				if p.Source, err = parseInts(src); err != nil {
					return fmt.Errorf("parse --src: %w", err)
				}
			}
			if cmd.Flags().Changed("dst") {
				if p.Destination, err = parseInts(dst); err != nil {
					return fmt.Errorf("parse --dst: %w", err)
				}
			}
			if cmd.Flags().Changed("sentinel") {
				p.Sentinel = sentinel
			}
			if p.Source == nil || p.Destination == nil {
				return fmt.Errorf("both source and destination are required (use --src/--dst or --file)")
			}

			return c.runPlan(cmd.Context(), cmd.OutOrStdout(), p, flags, false)
		},
	}

	cmd.Flags().StringVar(&src, "src", "", "source array, e.g. 1,2,3,-1")
	cmd.Flags().StringVar(&dst, "dst", "", "destination array, e.g. 3,-1,1,2")
	cmd.Flags().StringVar(&file, "file", "", "TOML problem file with source, destination and optional sentinel")
	cmd.Flags().IntVar(&sentinel, "sentinel", swapplan.DefaultSentinel, "value marking the empty slot")
	flags.register(cmd)

	return cmd
}

// runPlan traces p and writes the result. The step observer is attached only
// with --trace so plain runs keep the planner free of I/O.
func (c *CLI) runPlan(ctx context.Context, w io.Writer, p problem, f planFlags, showInput bool) error {
	logger := loggerFromContext(ctx)

	mode, err := swapplan.ParseLookupMode(f.lookup)
	if err != nil {
		return err
	}
	if err = checkFormat(f.format); err != nil {
		return err
	}

	opts := []swapplan.Option{swapplan.WithLookup(mode)}
	if f.trace {
		c.SetLogLevel(LogDebug)
		opts = append(opts, swapplan.WithOnStep(func(i int, s swapplan.Step, working []int) {
			logger.Debug("step", "index", i, "swap", s.String(), "state", fmt.Sprint(working))
		}))
	}

	logger.Debug("planning", "n", len(p.Source), "sentinel", p.Sentinel, "lookup", mode)
	prog := newProgress(logger)
	plan, err := swapplan.Trace(p.Source, p.Destination, p.Sentinel, opts...)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}
	prog.done("planned", "steps", plan.Len(), "bound", swapplan.MaxSteps(len(p.Source)))

	return writePlan(w, f.format, newPlanResult(p, mode, plan), showInput)
}
