package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AGTC", "GACT"},
		{"ATGC", "GCAT"},
		{"aTgC", "GcAt"},
		{"ATXC", "GNAT"},
		{"", ""},
		{"N", "N"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ReverseComplement(tt.in), "rc(%s)", tt.in)
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	for _, s := range []string{
		"A", "ATGC", "ATGCGATCGATCGATCGATCGATCGATCG", "NNNATGCNNN",
		"GGGGCCCCAAAATTTT",
	} {
		assert.Equal(t, s, ReverseComplement(ReverseComplement(s)), "rc(rc(%s))", s)
	}
}
