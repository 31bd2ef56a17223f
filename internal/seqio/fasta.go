// Package seqio loads the two input formats the engine consumes: FASTA
// reference templates and JSON primer lists. Alias resolution and name
// generation happen here, at the boundary, so the rest of the code only
// sees normalized records.
package seqio

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Template is one named reference sequence. Immutable once loaded.
type Template struct {
	SpeciesName string `json:"species"`
	Sequence    string `json:"-"`
	Description string `json:"description,omitempty"`
	Accession   string `json:"accession,omitempty"`
}

// Length returns the template sequence length.
func (t Template) Length() int { return len(t.Sequence) }

// accessionRE matches RefSeq style identifiers like NC_000913.3. The
// underscore is required so short species tokens are not mistaken for
// accessions.
var accessionRE = regexp.MustCompile(`^[A-Z]{1,2}_\d+(\.\d+)?$`)

// LoadTemplates parses a single- or multi-FASTA file into templates, in file
// order. The header's first whitespace-delimited token becomes the species
// name; the rest becomes the description. Sequences are uppercased.
func LoadTemplates(path string) ([]Template, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open template file: %w", err)
	}
	defer fh.Close()

	var (
		templates []Template
		current   *Template
		seq       strings.Builder
	)
	flush := func() {
		if current == nil {
			return
		}
		current.Sequence = strings.ToUpper(seq.String())
		templates = append(templates, *current)
		current = nil
		seq.Reset()
	}

	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				// Headerless record; skip until the next named one.
				continue
			}
			t := Template{SpeciesName: fields[0]}
			if len(fields) > 1 {
				t.Description = strings.Join(fields[1:], " ")
			}
			if accessionRE.MatchString(fields[0]) {
				t.Accession = fields[0]
			}
			current = &t
			continue
		}
		if current != nil {
			seq.WriteString(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read template file: %w", err)
	}
	flush()

	if len(templates) == 0 {
		return nil, fmt.Errorf("no FASTA records in %s", path)
	}
	return templates, nil
}

// LoadTemplate parses a single-template FASTA file. When the file holds more
// than one record only the first is used. A non-empty nameOverride replaces
// the header-derived species name.
func LoadTemplate(path, nameOverride string) (Template, error) {
	templates, err := LoadTemplates(path)
	if err != nil {
		return Template{}, err
	}
	t := templates[0]
	if nameOverride != "" {
		t.SpeciesName = nameOverride
	}
	return t, nil
}

// TemplatesByName keys templates on species name; later duplicates win.
func TemplatesByName(templates []Template) map[string]string {
	out := make(map[string]string, len(templates))
	for _, t := range templates {
		out[t.SpeciesName] = t.Sequence
	}
	return out
}
