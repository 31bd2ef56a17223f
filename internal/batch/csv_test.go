package batch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engkinandatama/primerlab/internal/specificity"
)

func TestWriteBatchCSV(t *testing.T) {
	res := &Result{
		Processed: 3,
		Passed:    1,
		Failed:    1,
		Results: map[string]*specificity.CheckResult{
			"b.json": {OverallScore: 92.5, Grade: "A", IsSpecific: true, PrimersChecked: 2},
			"a.json": {
				OverallScore: 40, Grade: "F", IsSpecific: false, PrimersChecked: 1,
				Warnings: []string{"p1_fwd binds off-target species X at 95.0%"},
			},
		},
		Errors:  map[string]string{"c.json": "parse primer file: bad"},
		Summary: Summary{AvgScore: 66.3, PassRate: 33.3},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteBatchCSV(res, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, "Filename,Score,Grade,Is_Specific,Primers_Checked,Warnings", lines[0])
	// Data rows are sorted by filename.
	assert.Equal(t, "a.json,40.0,F,false,1,1", lines[1])
	assert.Equal(t, "b.json,92.5,A,true,2,0", lines[2])
	assert.Equal(t, "c.json,,,false,0,FAILED: parse primer file: bad", lines[3])
	// Blank separator then the summary row.
	assert.Empty(t, lines[4])
	assert.Equal(t, "Average,66.3,,,,33.3% pass rate", lines[5])
}

func TestWriteBatchCSVQuotesErrorText(t *testing.T) {
	res := &Result{
		Processed: 1,
		Failed:    1,
		Results:   map[string]*specificity.CheckResult{},
		Errors:    map[string]string{"bad.json": `parse primer file: invalid character ',' after "forward"`},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteBatchCSV(res, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	// The error text holds a comma and quotes; the row keeps six columns.
	assert.Equal(t, `bad.json,,,false,0,"FAILED: parse primer file: invalid character ',' after ""forward"""`, lines[1])
}

func TestWriteBatchCSVBadPath(t *testing.T) {
	err := WriteBatchCSV(&Result{}, filepath.Join(t.TempDir(), "nope", "out.csv"))
	assert.Error(t, err)
}
