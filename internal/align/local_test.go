package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalAlignIdentical(t *testing.T) {
	score, a1, a2 := LocalAlign("GGTTGACTA", "GGTTGACTA", 2, -1, -2)
	assert.Equal(t, 18, score)
	assert.Equal(t, "GGTTGACTA", a1)
	assert.Equal(t, "GGTTGACTA", a2)
}

func TestLocalAlignSubstring(t *testing.T) {
	// The best local alignment is the embedded ACGT, untouched by the
	// flanking bases.
	score, a1, a2 := LocalAlign("ACGT", "TTACGTTT", 2, -1, -2)
	assert.Equal(t, 8, score)
	assert.Equal(t, "ACGT", a1)
	assert.Equal(t, "ACGT", a2)
}

func TestLocalAlignMismatch(t *testing.T) {
	// One internal substitution: 7 matches and 1 mismatch beat splitting
	// the alignment.
	score, a1, a2 := LocalAlign("ATCGATCG", "ATCGTTCG", 2, -1, -2)
	assert.Equal(t, 13, score)
	require.Len(t, a1, 8)
	require.Len(t, a2, 8)
	assert.Equal(t, "ATCGATCG", a1)
	assert.Equal(t, "ATCGTTCG", a2)
}

func TestLocalAlignGap(t *testing.T) {
	// seq2 is seq1 with one base deleted; the aligner must bridge it with
	// a gap rather than truncate.
	score, a1, a2 := LocalAlign("ATCGGATC", "ATCGATC", 2, -1, -2)
	assert.Equal(t, 12, score)
	assert.Equal(t, len(a1), len(a2))
	assert.Contains(t, a2, "-")
}

func TestLocalAlignEmpty(t *testing.T) {
	score, a1, a2 := LocalAlign("", "ATCG", 2, -1, -2)
	assert.Zero(t, score)
	assert.Empty(t, a1)
	assert.Empty(t, a2)
}

func TestLocalAlignNoSimilarity(t *testing.T) {
	score, a1, a2 := LocalAlign("AAAA", "TTTT", 2, -1, -2)
	assert.Zero(t, score)
	assert.Empty(t, a1)
	assert.Empty(t, a2)
}
