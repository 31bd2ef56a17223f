package specificity

import "sort"

// CrossReactivity is the refined, explainable per-primer score.
type CrossReactivity struct {
	PrimerName          string   `json:"primer"`
	TargetBinding       float64  `json:"targetBinding"`
	MaxOfftargetBinding float64  `json:"maxOfftargetBinding"`
	SpecificityScore    float64  `json:"specificityScore"`
	OfftargetSpecies    []string `json:"offtargetSpecies,omitempty"`
	IsSpecific          bool     `json:"isSpecific"`
	Grade               string   `json:"grade"`
}

// CrossReactivityScore refines the base score for one primer. Off-target
// species binding at or above threshold are collected as offenders; the
// base score (target minus strongest off-target, floored at 0) earns a +10
// bonus, capped at 100, when target binding reaches 90% with every
// off-target below 50%.
func CrossReactivityScore(m *Matrix, primer string, threshold float64) CrossReactivity {
	cr := CrossReactivity{
		PrimerName:    primer,
		TargetBinding: m.TargetBinding(primer),
	}

	for _, species := range m.SpeciesNames {
		if species == m.TargetSpecies {
			continue
		}
		b, ok := m.Binding(primer, species)
		if !ok {
			continue
		}
		if b.BestMatchPercent > cr.MaxOfftargetBinding {
			cr.MaxOfftargetBinding = b.BestMatchPercent
		}
		if b.BestMatchPercent >= threshold {
			cr.OfftargetSpecies = append(cr.OfftargetSpecies, species)
		}
	}

	score := cr.TargetBinding - cr.MaxOfftargetBinding
	if score < 0 {
		score = 0
	}
	if cr.TargetBinding >= 90 && cr.MaxOfftargetBinding < 50 {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	cr.SpecificityScore = score
	cr.IsSpecific = len(cr.OfftargetSpecies) == 0
	cr.Grade = ScoreToGrade(score)
	return cr
}

// Severity labels for off-target hits.
const (
	SeverityHigh   = "HIGH"
	SeverityMedium = "MEDIUM"
	SeverityLow    = "LOW"
)

// OfftargetHit is one primer/species combination binding at or above the
// detection threshold.
type OfftargetHit struct {
	PrimerName   string  `json:"primer"`
	SpeciesName  string  `json:"species"`
	MatchPercent float64 `json:"matchPercent"`
	Severity     string  `json:"severity"`
}

func severityRank(s string) int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

// DetectOfftargetSpecies enumerates every off-target binding in the result's
// matrix at or above threshold, tagged HIGH (>=90), MEDIUM (>=80) or LOW and
// sorted by severity, then by descending match percent.
func DetectOfftargetSpecies(result *CheckResult, threshold float64) []OfftargetHit {
	if result == nil || result.Matrix == nil {
		return nil
	}
	m := result.Matrix

	var hits []OfftargetHit
	for _, primer := range m.PrimerNames {
		for _, species := range m.SpeciesNames {
			if species == m.TargetSpecies {
				continue
			}
			b, ok := m.Binding(primer, species)
			if !ok || b.BestMatchPercent < threshold {
				continue
			}
			severity := SeverityLow
			switch {
			case b.BestMatchPercent >= 90:
				severity = SeverityHigh
			case b.BestMatchPercent >= 80:
				severity = SeverityMedium
			}
			hits = append(hits, OfftargetHit{
				PrimerName:   primer,
				SpeciesName:  species,
				MatchPercent: b.BestMatchPercent,
				Severity:     severity,
			})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if severityRank(hits[i].Severity) != severityRank(hits[j].Severity) {
			return severityRank(hits[i].Severity) < severityRank(hits[j].Severity)
		}
		return hits[i].MatchPercent > hits[j].MatchPercent
	})
	return hits
}
