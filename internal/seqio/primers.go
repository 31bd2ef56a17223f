package seqio

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Pair is a normalized primer pair. Aliased input keys (fwd/rev) are
// resolved at load time so downstream code never re-checks them.
type Pair struct {
	Name    string `json:"name"`
	Forward string `json:"forward"`
	Reverse string `json:"reverse"`
}

// Usable reports whether at least one of the two sequences is non-empty.
func (p Pair) Usable() bool { return p.Forward != "" || p.Reverse != "" }

// rawPrimer accepts both canonical and shorthand keys.
type rawPrimer struct {
	Name    string `json:"name"`
	Forward string `json:"forward"`
	Fwd     string `json:"fwd"`
	Reverse string `json:"reverse"`
	Rev     string `json:"rev"`
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// LoadPrimerJSON reads a JSON array of primer records and normalizes each
// into a Pair: forward|fwd and reverse|rev collapse to one field, sequences
// are uppercased, and unnamed primers get a generated Primer_<i+1> name.
// Records with neither sequence are dropped.
func LoadPrimerJSON(path string) ([]Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open primer file: %w", err)
	}

	var raw []rawPrimer
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse primer file %s: %w", path, err)
	}

	pairs := make([]Pair, 0, len(raw))
	for i, r := range raw {
		p := Pair{
			Name:    r.Name,
			Forward: strings.ToUpper(strings.TrimSpace(firstNonEmpty(r.Forward, r.Fwd))),
			Reverse: strings.ToUpper(strings.TrimSpace(firstNonEmpty(r.Reverse, r.Rev))),
		}
		if p.Name == "" {
			p.Name = fmt.Sprintf("Primer_%d", i+1)
		}
		if !p.Usable() {
			continue
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}
