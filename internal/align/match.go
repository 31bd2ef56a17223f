package align

import "sort"

// Site is one qualifying binding location of a primer on a template.
type Site struct {
	// Position is the 0-based offset of the window on the template's
	// forward strand, regardless of which strand matched.
	Position int

	// Strand is '+' when the primer itself matched, '-' when its
	// reverse complement did.
	Strand byte

	// MatchPercent is the fraction of identical positions, 0-100.
	MatchPercent float64

	// Mismatches is the number of differing positions in the window.
	Mismatches int

	// MismatchPositions holds the 0-based primer positions that differed.
	MismatchPositions []int
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// MatchPercent compares primer and target position by position. When the
// lengths differ, both are truncated to the shorter length first; trailing
// bases of the longer sequence are not compared and not counted. An empty
// primer scores 0.
func MatchPercent(primer, target string) (float64, int, []int) {
	n := len(primer)
	if len(target) < n {
		n = len(target)
	}
	if n == 0 {
		return 0, 0, nil
	}

	matches := 0
	var mismatchPos []int
	for i := 0; i < n; i++ {
		if upper(primer[i]) == upper(target[i]) {
			matches++
		} else {
			mismatchPos = append(mismatchPos, i)
		}
	}
	return float64(matches) / float64(n) * 100, len(mismatchPos), mismatchPos
}

// FindBindingSites slides a window the length of primer across template and
// scores every window against the primer (strand '+') and against its
// reverse complement (strand '-'). A window qualifies when its match percent
// reaches minMatchPercent and its mismatch count stays within maxMismatches.
// Sites come back sorted by match percent, highest first; ties keep scan
// order, '+' windows before '-'.
func FindBindingSites(primer, template string, minMatchPercent float64, maxMismatches int) []Site {
	pl := len(primer)
	if pl == 0 || len(template) < pl {
		return nil
	}

	var sites []Site
	scan := func(query string, strand byte) {
		for pos := 0; pos+pl <= len(template); pos++ {
			pct, mm, mmPos := MatchPercent(query, template[pos:pos+pl])
			if pct >= minMatchPercent && mm <= maxMismatches {
				sites = append(sites, Site{
					Position:          pos,
					Strand:            strand,
					MatchPercent:      pct,
					Mismatches:        mm,
					MismatchPositions: mmPos,
				})
			}
		}
	}
	scan(primer, '+')
	scan(ReverseComplement(primer), '-')

	sort.SliceStable(sites, func(i, j int) bool {
		return sites[i].MatchPercent > sites[j].MatchPercent
	})
	return sites
}
