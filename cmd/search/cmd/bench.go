package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scottcagno/stringsearch/pkg/bench"
	"github.com/scottcagno/stringsearch/pkg/config"
	"github.com/scottcagno/stringsearch/pkg/util"
)

func newBenchCmd(root *rootOptions) *cobra.Command {
	var (
		configPath  string
		quick       bool
		parallelism int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the algorithms on random and repetitive text of doubling size",
		Long: `bench runs every configured scenario and reports, per algorithm and text
size, the number of character comparisons, comparisons per text character
and the elapsed time. Without --config it runs the default scenarios: the
pattern ABCDE in random A-Z text and AAAAB in a run of A's, from one million
characters doubling six times.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if quick {
				for i := range cfg.Scenarios {
					cfg.Scenarios[i].StartSize = max(1000, len(cfg.Scenarios[i].Pattern))
					cfg.Scenarios[i].Steps = min(cfg.Scenarios[i].Steps, 3)
				}
			}
			if parallelism > 0 {
				cfg.Parallelism = parallelism
			}
			// the config's level applies unless --log-level was given
			if !cmd.Flags().Changed("log-level") {
				root.logLevel = cfg.LogLevel
				if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
					return err
				}
			}

			ctx, stop := util.SignalContext(cmd.Context())
			defer stop()

			ms, err := bench.RunAll(ctx, cfg, bench.Options{Logger: root.log})
			if len(ms) > 0 {
				out := cmd.OutOrStdout()
				if werr := bench.WriteReport(out, ms, bench.IsTTY(out)); werr != nil && err == nil {
					err = werr
				}
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file with benchmark scenarios")
	cmd.Flags().BoolVar(&quick, "quick", false, "Start at 1000 characters and run at most three sizes")
	cmd.Flags().IntVar(&parallelism, "parallelism", 0, "Algorithms to run at once (default from config)")

	return cmd
}
