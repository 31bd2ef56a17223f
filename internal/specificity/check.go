package specificity

import (
	"fmt"
	"math"

	"github.com/engkinandatama/primerlab/internal/seqio"
)

// CheckConfig tunes a species-specificity check.
type CheckConfig struct {
	// OfftargetThreshold is the off-target match percent at which a
	// warning fires and the check stops being specific.
	OfftargetThreshold float64
}

// DefaultCheckConfig mirrors the routine warning threshold.
func DefaultCheckConfig() CheckConfig {
	return CheckConfig{OfftargetThreshold: 80}
}

// CheckResult aggregates one specificity check over all primers.
type CheckResult struct {
	TargetSpecies   string             `json:"targetSpecies"`
	PrimersChecked  int                `json:"primersChecked"`
	SpeciesChecked  int                `json:"speciesChecked"`
	Matrix          *Matrix            `json:"matrix"`
	PrimerScores    map[string]float64 `json:"primerScores"`
	OverallScore    float64            `json:"overallScore"`
	Grade           string             `json:"grade"`
	IsSpecific      bool               `json:"isSpecific"`
	Warnings        []string           `json:"warnings,omitempty"`
	Recommendations []string           `json:"recommendations,omitempty"`
}

// ScoreToGrade maps a 0-100 score onto letter grades with inclusive lower
// bounds: >=90 A, >=80 B, >=70 C, >=60 D, else F.
func ScoreToGrade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// CheckSpeciesSpecificity builds the binding matrix for the primer set and
// scores it. Any off-target binding at or above cfg.OfftargetThreshold adds
// a warning and makes the whole check non-specific. The overall score is
// the mean of the per-primer base scores.
func (a *Analyzer) CheckSpeciesSpecificity(
	pairs []seqio.Pair,
	target seqio.Template,
	offtargets []seqio.Template,
	cfg CheckConfig,
) (*CheckResult, error) {
	usable := pairs[:0:0]
	for _, p := range pairs {
		if p.Usable() {
			usable = append(usable, p)
		}
	}
	if len(usable) == 0 {
		return nil, fmt.Errorf("no usable primers for %s", target.SpeciesName)
	}
	if target.Length() == 0 {
		return nil, fmt.Errorf("target template %s is empty", target.SpeciesName)
	}

	matrix := a.CompareBindingAcrossSpecies(usable, target, offtargets)

	result := &CheckResult{
		TargetSpecies:  target.SpeciesName,
		PrimersChecked: len(usable),
		SpeciesChecked: len(matrix.SpeciesNames),
		Matrix:         matrix,
		PrimerScores:   make(map[string]float64, len(matrix.PrimerNames)),
		IsSpecific:     true,
	}

	var total float64
	for _, primer := range matrix.PrimerNames {
		score := matrix.SpecificityScore(primer)
		result.PrimerScores[primer] = score
		total += score

		for _, species := range matrix.SpeciesNames {
			if species == matrix.TargetSpecies {
				continue
			}
			b, ok := matrix.Binding(primer, species)
			if ok && b.BestMatchPercent >= cfg.OfftargetThreshold {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"%s binds off-target species %s at %.1f%%",
					primer, species, b.BestMatchPercent,
				))
				result.IsSpecific = false
			}
		}
	}

	result.OverallScore = math.Round(total/float64(len(matrix.PrimerNames))*10) / 10
	result.Grade = ScoreToGrade(result.OverallScore)

	if !result.IsSpecific {
		result.Recommendations = append(result.Recommendations,
			"Redesign primers to avoid off-target amplification")
	}
	if result.OverallScore < 70 {
		result.Recommendations = append(result.Recommendations,
			"Overall specificity is low; consider alternative primer pairs or stricter binding thresholds")
	}
	return result, nil
}
