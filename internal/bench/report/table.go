package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Ranking Quality: %s ===\n\n", r.Suite)

	header := []string{"Ranking", "Len", "AP", "NDCG"}
	for _, k := range r.KValues {
		header = append(header, fmt.Sprintf("NDCG@%d", k))
	}
	header = append(header, "Status")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range r.Entries {
		row := []string{e.RankingID, fmt.Sprintf("%d", e.Length)}
		if e.Error != "" {
			row = append(row, "N/A", "N/A")
			for range r.KValues {
				row = append(row, "N/A")
			}
			row = append(row, "ERR: "+e.Error)
		} else {
			row = append(row, fmtScore(e.AP), fmtScore(e.NDCG))
			for _, k := range r.KValues {
				row = append(row, fmtScore(e.NDCGAtK[k]))
			}
			row = append(row, "OK")
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
	return tw.Flush()
}

func fmtScore(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
