package specificity

import (
	"github.com/engkinandatama/primerlab/internal/seqio"
)

// Matrix is the primer-by-species table of binding results a specificity
// check is derived from. TargetSpecies is always one of SpeciesNames.
type Matrix struct {
	PrimerNames   []string                             `json:"primers"`
	SpeciesNames  []string                             `json:"species"`
	TargetSpecies string                               `json:"targetSpecies"`
	Bindings      map[string]map[string]SpeciesBinding `json:"bindings"`
}

// Binding returns the cell for a primer/species combination.
func (m *Matrix) Binding(primer, species string) (SpeciesBinding, bool) {
	row, ok := m.Bindings[primer]
	if !ok {
		return SpeciesBinding{}, false
	}
	b, ok := row[species]
	return b, ok
}

// TargetBinding returns the primer's best match percent on the target
// species, 0 when it never bound there.
func (m *Matrix) TargetBinding(primer string) float64 {
	if b, ok := m.Binding(primer, m.TargetSpecies); ok {
		return b.BestMatchPercent
	}
	return 0
}

// MaxOfftargetBinding returns the strongest best-match percent the primer
// reaches on any non-target species, and that species' name.
func (m *Matrix) MaxOfftargetBinding(primer string) (float64, string) {
	best, species := 0.0, ""
	for _, name := range m.SpeciesNames {
		if name == m.TargetSpecies {
			continue
		}
		if b, ok := m.Binding(primer, name); ok && b.BestMatchPercent > best {
			best, species = b.BestMatchPercent, name
		}
	}
	return best, species
}

// SpecificityScore derives the base (unweighted) score for one primer:
// target binding minus the strongest off-target binding, clamped to
// [0, 100]. A primer with no target binding at all scores 0, which is
// indistinguishable from one whose target and off-target bindings cancel
// out; callers needing the distinction must inspect the matrix cells.
func (m *Matrix) SpecificityScore(primer string) float64 {
	target := m.TargetBinding(primer)
	if target == 0 {
		return 0
	}
	offtarget, _ := m.MaxOfftargetBinding(primer)
	score := target - offtarget
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// CompareBindingAcrossSpecies builds the full matrix for a set of primer
// pairs. Each pair contributes its forward and reverse sequence as separate
// rows, suffixed _fwd and _rev; every row is checked against the target
// template and each off-target template. An off-target cell is marked
// non-specific when its binding is strong.
func (a *Analyzer) CompareBindingAcrossSpecies(
	pairs []seqio.Pair,
	target seqio.Template,
	offtargets []seqio.Template,
) *Matrix {
	m := &Matrix{
		TargetSpecies: target.SpeciesName,
		Bindings:      map[string]map[string]SpeciesBinding{},
	}
	m.SpeciesNames = append(m.SpeciesNames, target.SpeciesName)
	for _, t := range offtargets {
		m.SpeciesNames = append(m.SpeciesNames, t.SpeciesName)
	}

	templates := append([]seqio.Template{target}, offtargets...)
	for _, pair := range pairs {
		for _, p := range []struct{ name, seq string }{
			{pair.Name + "_fwd", pair.Forward},
			{pair.Name + "_rev", pair.Reverse},
		} {
			if p.seq == "" {
				continue
			}
			m.PrimerNames = append(m.PrimerNames, p.name)
			row := make(map[string]SpeciesBinding, len(templates))
			for _, tpl := range templates {
				b := a.AnalyzePrimerBinding(p.name, p.seq, tpl)
				if tpl.SpeciesName == target.SpeciesName {
					b.IsSpecific = true
				} else {
					b.IsSpecific = b.BestMatchPercent < strongBindingPercent
				}
				row[tpl.SpeciesName] = b
			}
			m.Bindings[p.name] = row
		}
	}
	return m
}
