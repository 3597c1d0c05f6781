package cli

import (
	"fmt"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/metrics"
	"github.com/DjordjeVuckovic/rank-eval/internal/ranking"
	"github.com/spf13/cobra"
)

func newAPCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ap <relevance>...",
		Short:   "Average precision of one ranking",
		Example: "  rankeval ap 1 0 1 0 1\n  rankeval ap -- 1 -0.5  # values starting with '-' follow --",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ranking.Parse(args)
			if err != nil {
				return err
			}
			score, err := metrics.AveragePrecision(r)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", score)
			return nil
		},
	}
}

func newNDCGCmd() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:     "ndcg <relevance>...",
		Short:   "Normalized DCG of one ranking",
		Example: "  rankeval ndcg --k 3 3 2 3 0 1 2\n  rankeval ndcg --k 3 -- 3 -1 2  # values starting with '-' follow --",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ranking.Parse(args)
			if err != nil {
				return err
			}

			var opts []metrics.NDCGOption
			if cmd.Flags().Changed("k") {
				opts = append(opts, metrics.AtK(k))
			}

			score, err := metrics.NormalizedDCG(r, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", score)
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 0, "Only score the top k positions (default: whole ranking)")
	return cmd
}
