package seqio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTemplatesMulti(t *testing.T) {
	path := writeFile(t, "panel.fa", `>E_coli Escherichia coli K-12
atgcgatcga
TCGATCGATC
>S_aureus Staphylococcus aureus
GGGGCCCC

>B_subtilis
AAAATTTT
`)
	templates, err := LoadTemplates(path)
	require.NoError(t, err)
	require.Len(t, templates, 3)

	assert.Equal(t, "E_coli", templates[0].SpeciesName)
	assert.Equal(t, "Escherichia coli K-12", templates[0].Description)
	assert.Equal(t, "ATGCGATCGATCGATCGATC", templates[0].Sequence)
	assert.Equal(t, 20, templates[0].Length())

	assert.Equal(t, "S_aureus", templates[1].SpeciesName)
	assert.Equal(t, "GGGGCCCC", templates[1].Sequence)

	assert.Equal(t, "B_subtilis", templates[2].SpeciesName)
	assert.Empty(t, templates[2].Description)
}

func TestLoadTemplatesAccession(t *testing.T) {
	path := writeFile(t, "ref.fa", ">NC_000913.3 Escherichia coli str. K-12\nATGC\n")
	templates, err := LoadTemplates(path)
	require.NoError(t, err)
	assert.Equal(t, "NC_000913.3", templates[0].SpeciesName)
	assert.Equal(t, "NC_000913.3", templates[0].Accession)

	// Plain species-like tokens are not accessions.
	path = writeFile(t, "plain.fa", ">NC123 not an accession\nATGC\n")
	templates, err = LoadTemplates(path)
	require.NoError(t, err)
	assert.Equal(t, "NC123", templates[0].SpeciesName)
	assert.Empty(t, templates[0].Accession)
}

func TestLoadTemplateOverrideName(t *testing.T) {
	path := writeFile(t, "target.fa", ">raw_header some description\nATGCATGC\n")
	tpl, err := LoadTemplate(path, "E_coli")
	require.NoError(t, err)
	assert.Equal(t, "E_coli", tpl.SpeciesName)
	assert.Equal(t, "ATGCATGC", tpl.Sequence)
}

func TestLoadTemplatesErrors(t *testing.T) {
	_, err := LoadTemplates(filepath.Join(t.TempDir(), "missing.fa"))
	assert.Error(t, err)

	empty := writeFile(t, "empty.fa", "")
	_, err = LoadTemplates(empty)
	assert.Error(t, err)
}

func TestTemplatesByName(t *testing.T) {
	m := TemplatesByName([]Template{
		{SpeciesName: "A", Sequence: "ATGC"},
		{SpeciesName: "B", Sequence: "GGCC"},
	})
	assert.Equal(t, map[string]string{"A": "ATGC", "B": "GGCC"}, m)
}
