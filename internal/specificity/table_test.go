package specificity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixTable(t *testing.T) {
	m := matrixWith(95.5, map[string]float64{"other": 0})
	out := MatrixTable(m)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	// Target species column is starred; empty cells render as "-".
	assert.Contains(t, lines[0], "target*")
	assert.Contains(t, lines[0], "other")
	assert.NotContains(t, lines[0], "other*")
	assert.Contains(t, lines[1], "p_fwd")
	assert.Contains(t, lines[1], "95.5")
	assert.Contains(t, lines[1], "-")
}
