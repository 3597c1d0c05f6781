package cli

import (
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/rank-eval/internal/bench/judgment"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/report"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/runner"
	"github.com/DjordjeVuckovic/rank-eval/internal/bench/suite"
	"github.com/spf13/cobra"
)

type evalOptions struct {
	SuitePath   string
	Judgments   string
	Output      string
	Format      string
	KValues     []int
	Concurrency int
}

func newEvalCmd() *cobra.Command {
	var o evalOptions

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Score every ranking in a YAML suite",
		Example: `  rankeval eval --suite rankings.yaml
  rankeval eval --suite rankings.yaml --k 5,10 --output report.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.Format != "table" && o.Format != "json" {
				return fmt.Errorf("unknown format %q (want table or json)", o.Format)
			}
			for _, k := range o.KValues {
				if k <= 0 {
					return fmt.Errorf("k value must be positive, got %d", k)
				}
			}

			s, err := suite.LoadFromFile(o.SuitePath)
			if err != nil {
				return fmt.Errorf("load suite %s: %w", o.SuitePath, err)
			}

			if o.Judgments != "" {
				jf, err := judgment.ImportAnnotations(o.Judgments)
				if err != nil {
					return err
				}
				s = judgment.MergeIntoSuite(jf, s)
				slog.Debug("Judgments merged", "path", o.Judgments, "rankings", len(jf.Rankings))
			}

			r := runner.New(runner.Config{KValues: o.KValues, Concurrency: o.Concurrency})
			result, err := r.Run(cmd.Context(), s)
			if err != nil {
				return err
			}

			rpt := report.Generate(result, version)
			switch o.Format {
			case "json":
				err = report.EncodeJSON(rpt, cmd.OutOrStdout())
			default:
				err = report.WriteTable(rpt, cmd.OutOrStdout())
			}
			if err != nil {
				return err
			}

			if o.Output != "" {
				if err := report.WriteJSON(rpt, o.Output); err != nil {
					return err
				}
				slog.Info("Report written", "path", o.Output)
			}

			if n := result.ErrorCount(); n > 0 {
				return fmt.Errorf("%d of %d rankings failed", n, len(result.Entries))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&o.SuitePath, "suite", "s", "", "Path to ranking suite YAML")
	cmd.Flags().StringVarP(&o.Judgments, "judgments", "j", "", "Graded judgment file merged into ranked-docs entries")
	cmd.Flags().StringVarP(&o.Output, "output", "o", "", "Also write the JSON report to this path")
	cmd.Flags().StringVar(&o.Format, "format", "table", "Output format: table or json")
	cmd.Flags().IntSliceVarP(&o.KValues, "k", "k", nil, "NDCG cutoffs, comma-separated (default: suite k_values)")
	cmd.Flags().IntVarP(&o.Concurrency, "concurrency", "c", runner.DefaultConcurrency, "Rankings scored in parallel")
	_ = cmd.MarkFlagRequired("suite")

	return cmd
}
