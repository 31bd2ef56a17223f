// Package align holds the low-level sequence comparison primitives:
// reverse complement, per-position match scoring, the sliding-window
// binding-site scan, and a Smith-Waterman local aligner.
package align

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['G'] = 'C'
	complement['C'] = 'G'
	complement['a'] = 't'
	complement['t'] = 'a'
	complement['g'] = 'c'
	complement['c'] = 'g'
	complement['N'] = 'N'
	complement['n'] = 'n'
}

// ReverseComplement returns the reverse complement of a DNA sequence.
// Case is preserved; bases outside {A,T,G,C,N} become 'N'.
func ReverseComplement(seq string) string {
	n := len(seq)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return string(out)
}
