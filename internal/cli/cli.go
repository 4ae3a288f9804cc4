// Package cli implements the swaptrace command-line interface.
//
// The CLI is a thin demonstration harness around swapplan.Trace: it reads a
// source and destination array (from flags or a TOML problem file), plans the
// swaps and prints them. Logging goes through charmbracelet/log on stderr;
// --verbose switches to debug level and --trace logs every step.
//
// # Commands
//
//   - plan:   plan the swaps for a given pair of arrays
//   - random: generate a seeded random instance and plan it
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "swaptrace"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  string  // git commit SHA
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// out receives command results (plans, instances); logs go to Logger.
	out io.Writer
}

// New creates a CLI writing results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "Plan the swaps that rearrange an array through a single empty slot",
		Long:          `swaptrace computes the ordered index swaps that turn a source array into a destination array when every move has to go through the one empty slot (the sentinel value).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetOut(c.out)
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\n", appName, version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.planCommand())
	root.AddCommand(c.randomCommand())

	return root
}
