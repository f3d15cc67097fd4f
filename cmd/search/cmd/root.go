// Package cmd provides the commands of the search CLI.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/scottcagno/stringsearch/pkg/logging"
)

type rootOptions struct {
	logLevel string
	log      *slog.Logger
}

// NewRootCmd creates the root command of the search CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{log: logging.Discard()}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Exact substring search with naive, KMP, Boyer-Moore and Rabin-Karp",
		Long: `search finds every occurrence of a pattern in a text with one of four
interchangeable algorithms, and benchmarks them against each other.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.log = logging.New(cmd.ErrOrStderr(), level)
			slog.SetDefault(opts.log)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newFindCmd(opts))
	cmd.AddCommand(newBenchCmd(opts))
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
