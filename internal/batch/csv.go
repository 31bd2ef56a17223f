package batch

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// csvField quotes a value when it would otherwise break the row apart.
func csvField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// WriteBatchCSV writes one row per processed file, a blank line, then a
// summary row with the batch average. Failed files carry their error in the
// Warnings column. Rows are sorted by filename so output is deterministic
// regardless of completion order.
func WriteBatchCSV(res *Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, "Filename,Score,Grade,Is_Specific,Primers_Checked,Warnings")

	paths := make([]string, 0, len(res.Results)+len(res.Errors))
	for p := range res.Results {
		paths = append(paths, p)
	}
	for p := range res.Errors {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		if cr, ok := res.Results[p]; ok {
			fmt.Fprintf(f, "%s,%.1f,%s,%t,%d,%d\n",
				csvField(p), cr.OverallScore, cr.Grade, cr.IsSpecific, cr.PrimersChecked, len(cr.Warnings))
		} else {
			fmt.Fprintf(f, "%s,,,false,0,%s\n", csvField(p), csvField("FAILED: "+res.Errors[p]))
		}
	}

	fmt.Fprintln(f)
	fmt.Fprintf(f, "Average,%.1f,,,,%.1f%% pass rate\n",
		res.Summary.AvgScore, res.Summary.PassRate)
	return nil
}
