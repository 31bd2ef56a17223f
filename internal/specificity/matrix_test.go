package specificity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engkinandatama/primerlab/internal/seqio"
)

// matrixWith builds a one-primer matrix with fixed best-match percents.
func matrixWith(target float64, offtargets map[string]float64) *Matrix {
	m := &Matrix{
		PrimerNames:   []string{"p_fwd"},
		SpeciesNames:  []string{"target"},
		TargetSpecies: "target",
		Bindings:      map[string]map[string]SpeciesBinding{"p_fwd": {}},
	}
	set := func(species string, pct float64) {
		b := SpeciesBinding{SpeciesName: species, PrimerName: "p_fwd", BestMatchPercent: pct}
		if pct > 0 {
			b.BindingSites = []BindingSite{{MatchPercent: pct, Strand: "+"}}
		}
		m.Bindings["p_fwd"][species] = b
	}
	set("target", target)
	for species, pct := range offtargets {
		m.SpeciesNames = append(m.SpeciesNames, species)
		set(species, pct)
	}
	return m
}

func TestSpecificityScoreBase(t *testing.T) {
	m := matrixWith(95, map[string]float64{"other": 60})
	assert.Equal(t, 35.0, m.SpecificityScore("p_fwd"))
}

func TestSpecificityScoreEqualBinding(t *testing.T) {
	// Perfect binding to the target and to one off-target cancels out.
	m := matrixWith(100, map[string]float64{"other": 100})
	assert.Equal(t, 0.0, m.SpecificityScore("p_fwd"))
}

func TestSpecificityScoreNoTargetBinding(t *testing.T) {
	m := matrixWith(0, map[string]float64{"other": 90})
	assert.Equal(t, 0.0, m.SpecificityScore("p_fwd"))
}

func TestSpecificityScoreClamped(t *testing.T) {
	m := matrixWith(100, nil)
	assert.Equal(t, 100.0, m.SpecificityScore("p_fwd"))
	assert.Equal(t, 0.0, m.SpecificityScore("unknown_primer"))
}

func TestSpecificityScoreMonotone(t *testing.T) {
	// Holding target binding fixed, the score never increases as the
	// strongest off-target binding grows.
	prev := 101.0
	for _, off := range []float64{0, 25, 50, 75, 90, 100} {
		m := matrixWith(90, map[string]float64{"other": off})
		score := m.SpecificityScore("p_fwd")
		assert.LessOrEqual(t, score, prev, "off-target %.0f", off)
		prev = score
	}
}

func TestCompareBindingAcrossSpecies(t *testing.T) {
	target := seqio.Template{SpeciesName: "E_coli", Sequence: "ATGCGATCGATCGATCGATCGATCGATCG"}
	offtarget := seqio.Template{SpeciesName: "S_aureus", Sequence: "TTTTTTTTTTTTTTTTTTTT"}

	a := NewAnalyzer(DefaultOptions(), nil)
	m := a.CompareBindingAcrossSpecies([]seqio.Pair{
		{Name: "p1", Forward: "ATCGATCG", Reverse: "CGATCGAT"},
		{Name: "rev_only", Reverse: "GGGGGGGG"},
	}, target, []seqio.Template{offtarget})

	assert.Equal(t, "E_coli", m.TargetSpecies)
	assert.Equal(t, []string{"E_coli", "S_aureus"}, m.SpeciesNames)
	// Pairs expand to _fwd/_rev rows; empty sequences contribute none.
	assert.Equal(t, []string{"p1_fwd", "p1_rev", "rev_only_rev"}, m.PrimerNames)

	b, ok := m.Binding("p1_fwd", "E_coli")
	require.True(t, ok)
	assert.Equal(t, 100.0, b.BestMatchPercent)
	assert.True(t, b.HasBinding())
	assert.True(t, b.IsSpecific)

	b, ok = m.Binding("p1_fwd", "S_aureus")
	require.True(t, ok)
	assert.False(t, b.HasBinding())
	assert.True(t, b.IsSpecific, "no off-target binding is specific")
}

func TestBindingSiteStrongBinding(t *testing.T) {
	assert.True(t, BindingSite{MatchPercent: 80}.StrongBinding())
	assert.False(t, BindingSite{MatchPercent: 79.9}.StrongBinding())
}
