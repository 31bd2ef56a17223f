// Package specificity evaluates primer pairs against a target template and
// a panel of off-target templates, assembling a primer-by-species binding
// matrix and deriving graded specificity scores from it.
package specificity

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/engkinandatama/primerlab/internal/align"
	"github.com/engkinandatama/primerlab/internal/cache"
	"github.com/engkinandatama/primerlab/internal/seqio"
)

// strongBindingPercent is the match percent at or above which a single site
// counts as strong binding.
const strongBindingPercent = 80

// BindingSite is one qualifying primer binding location on a template.
type BindingSite struct {
	Position          int     `json:"position"`
	Strand            string  `json:"strand"`
	MatchPercent      float64 `json:"matchPercent"`
	Mismatches        int     `json:"mismatches"`
	MismatchPositions []int   `json:"mismatchPositions,omitempty"`
}

// StrongBinding reports whether the site matches at 80% or better.
func (s BindingSite) StrongBinding() bool { return s.MatchPercent >= strongBindingPercent }

// SpeciesBinding is the result of checking one primer against one template.
type SpeciesBinding struct {
	SpeciesName      string        `json:"species"`
	PrimerName       string        `json:"primer"`
	PrimerSequence   string        `json:"primerSeq"`
	BindingSites     []BindingSite `json:"bindingSites,omitempty"`
	BestMatchPercent float64       `json:"bestMatchPercent"`
	IsSpecific       bool          `json:"isSpecific"`
}

// HasBinding reports whether any qualifying site was found.
func (b SpeciesBinding) HasBinding() bool { return len(b.BindingSites) > 0 }

// Options bound the binding-site search.
type Options struct {
	// MinMatchPercent is the lowest window match percent reported as a site.
	MinMatchPercent float64

	// MaxMismatches is the most differing positions a site may carry.
	MaxMismatches int
}

// DefaultOptions mirror the thresholds used for routine specificity runs.
func DefaultOptions() Options {
	return Options{MinMatchPercent: 80, MaxMismatches: 3}
}

// Analyzer runs binding analyses, optionally backed by an alignment cache.
// The cache handle is passed in explicitly; a nil Cache disables caching.
type Analyzer struct {
	Opts  Options
	Cache *cache.Store

	log *logrus.Entry
}

// NewAnalyzer returns an analyzer with the given search options and cache
// handle (nil for none).
func NewAnalyzer(opts Options, store *cache.Store) *Analyzer {
	return &Analyzer{
		Opts:  opts,
		Cache: store,
		log:   logrus.WithField("component", "specificity"),
	}
}

// AnalyzePrimerBinding enumerates every qualifying site for one primer on
// one template. Results are served from the cache when possible; cache
// content is keyed on the sequences alone, so names are restamped on a hit.
func (a *Analyzer) AnalyzePrimerBinding(primerName, primerSeq string, tpl seqio.Template) SpeciesBinding {
	if a.Cache != nil {
		if raw, ok := a.Cache.Get(primerSeq, tpl.Sequence); ok {
			var b SpeciesBinding
			if err := json.Unmarshal(raw, &b); err == nil {
				b.PrimerName = primerName
				b.SpeciesName = tpl.SpeciesName
				return b
			}
			a.log.WithField("primer", primerName).Warn("discarding undecodable cache entry")
		}
	}

	b := SpeciesBinding{
		SpeciesName:    tpl.SpeciesName,
		PrimerName:     primerName,
		PrimerSequence: primerSeq,
	}
	for _, s := range align.FindBindingSites(primerSeq, tpl.Sequence, a.Opts.MinMatchPercent, a.Opts.MaxMismatches) {
		b.BindingSites = append(b.BindingSites, BindingSite{
			Position:          s.Position,
			Strand:            string(s.Strand),
			MatchPercent:      s.MatchPercent,
			Mismatches:        s.Mismatches,
			MismatchPositions: s.MismatchPositions,
		})
		if s.MatchPercent > b.BestMatchPercent {
			b.BestMatchPercent = s.MatchPercent
		}
	}

	if a.Cache != nil {
		if raw, err := json.Marshal(b); err == nil {
			a.Cache.Set(primerSeq, tpl.Sequence, primerName, tpl.SpeciesName, raw)
		}
	}
	return b
}
