package specificity

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// MatrixTable renders the matrix as a fixed-width ASCII table of best match
// percents, one primer per row, one species per column. The target species
// column is marked with a trailing '*'. Cells with no binding show "-".
// Purely presentational; nothing is recomputed.
func MatrixTable(m *Matrix) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprint(w, "Primer")
	for _, species := range m.SpeciesNames {
		if species == m.TargetSpecies {
			fmt.Fprintf(w, "\t%s*", species)
		} else {
			fmt.Fprintf(w, "\t%s", species)
		}
	}
	fmt.Fprintln(w)

	for _, primer := range m.PrimerNames {
		fmt.Fprint(w, primer)
		for _, species := range m.SpeciesNames {
			b, ok := m.Binding(primer, species)
			if !ok || !b.HasBinding() {
				fmt.Fprint(w, "\t-")
			} else {
				fmt.Fprintf(w, "\t%.1f", b.BestMatchPercent)
			}
		}
		fmt.Fprintln(w)
	}

	w.Flush()
	return buf.String()
}
