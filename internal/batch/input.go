// Package batch loads many primer sets and runs specificity checks over
// them concurrently, aggregating pass/fail statistics. Failures stay local:
// a file that cannot be read or checked is counted, logged and skipped, and
// never aborts the rest of the run.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/engkinandatama/primerlab/internal/seqio"
)

// FileResult is the per-file loading outcome. Loaders report problems here
// instead of failing the batch.
type FileResult struct {
	Path    string
	Primers []seqio.Pair
	Err     error
}

// Input aggregates the primer files feeding one batch run.
type Input struct {
	Files        []FileResult
	TotalFiles   int
	TotalPrimers int
}

// LoadPrimerFiles reads each JSON primer file independently. A file that is
// missing or fails to parse contributes a FileResult with Err set and zero
// primers; the rest load normally.
func LoadPrimerFiles(paths []string) *Input {
	log := logrus.WithField("component", "batch")
	in := &Input{}
	for _, path := range paths {
		fr := FileResult{Path: path}
		fr.Primers, fr.Err = seqio.LoadPrimerJSON(path)
		if fr.Err != nil {
			log.WithField("file", path).WithError(fr.Err).Warn("skipping primer file")
		}
		in.Files = append(in.Files, fr)
		in.TotalFiles++
		in.TotalPrimers += len(fr.Primers)
	}
	return in
}

// LoadPrimersFromDirectory loads every file under dir matching pattern
// (e.g. "*.json"), in sorted order. A missing directory is fatal; bad files
// inside it are not.
func LoadPrimersFromDirectory(dir, pattern string) (*Input, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("primer directory: %w", err)
	}
	if pattern == "" {
		pattern = "*.json"
	}
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	sort.Strings(paths)
	return LoadPrimerFiles(paths), nil
}

// LoadMultiFASTATemplates splits a multi-FASTA file into a map from the
// header's first token to the uppercased sequence.
func LoadMultiFASTATemplates(path string) (map[string]string, error) {
	templates, err := seqio.LoadTemplates(path)
	if err != nil {
		return nil, err
	}
	return seqio.TemplatesByName(templates), nil
}
