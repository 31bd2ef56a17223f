package align

// traceback directions for the Smith-Waterman score matrix.
const (
	tbNone = iota
	tbDiag
	tbUp
	tbLeft
)

// LocalAlign runs Smith-Waterman local alignment between two sequences and
// returns the maximum alignment score with the two aligned subsequences
// (gaps rendered as '-'). Cell scores floor at zero; the traceback starts
// from the global maximum and stops at the first zero cell.
//
// It is a coarser, gap-aware signal than the window scan and is kept out of
// the default binding search; use it to inspect ambiguous near-threshold
// candidates.
func LocalAlign(seq1, seq2 string, matchScore, mismatchPenalty, gapPenalty int) (int, string, string) {
	m, n := len(seq1), len(seq2)
	if m == 0 || n == 0 {
		return 0, "", ""
	}

	score := make([][]int, m+1)
	trace := make([][]uint8, m+1)
	for i := range score {
		score[i] = make([]int, n+1)
		trace[i] = make([]uint8, n+1)
	}

	best, bi, bj := 0, 0, 0
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			s := mismatchPenalty
			if upper(seq1[i-1]) == upper(seq2[j-1]) {
				s = matchScore
			}
			diag := score[i-1][j-1] + s
			up := score[i-1][j] + gapPenalty
			left := score[i][j-1] + gapPenalty

			v, d := 0, uint8(tbNone)
			if diag > v {
				v, d = diag, tbDiag
			}
			if up > v {
				v, d = up, tbUp
			}
			if left > v {
				v, d = left, tbLeft
			}
			score[i][j] = v
			trace[i][j] = d
			if v > best {
				best, bi, bj = v, i, j
			}
		}
	}

	var a1, a2 []byte
	for i, j := bi, bj; score[i][j] > 0; {
		switch trace[i][j] {
		case tbDiag:
			a1 = append(a1, seq1[i-1])
			a2 = append(a2, seq2[j-1])
			i, j = i-1, j-1
		case tbUp:
			a1 = append(a1, seq1[i-1])
			a2 = append(a2, '-')
			i--
		case tbLeft:
			a1 = append(a1, '-')
			a2 = append(a2, seq2[j-1])
			j--
		}
	}

	reverse(a1)
	reverse(a2)
	return best, string(a1), string(a2)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
