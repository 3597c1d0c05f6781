// Package cli defines the Cobra command tree for the rankeval CLI.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "rankeval",
		Short: "Score ranked relevance lists with average precision and NDCG",
		Long: `rankeval computes Average Precision and Normalized Discounted Cumulative
Gain for ranked lists of relevance values.

Score a single ranking with 'rankeval ap' or 'rankeval ndcg', or a whole
YAML suite of rankings with 'rankeval eval'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newAPCmd(),
		newNDCGCmd(),
		newEvalCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute(v string) {
	version = v
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rankeval %s\n", version)
		},
	}
}
