package batch

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/engkinandatama/primerlab/internal/seqio"
	"github.com/engkinandatama/primerlab/internal/specificity"
)

// Summary holds aggregate statistics over the successfully scored files.
type Summary struct {
	AvgScore float64 `json:"avgScore"`
	MinScore float64 `json:"minScore"`
	MaxScore float64 `json:"maxScore"`
	PassRate float64 `json:"passRate"`
}

// Result is the aggregated outcome of one batch run. Results is keyed by
// file path and populated in completion order; re-sort by key for
// deterministic output.
type Result struct {
	RunID         string                              `json:"runId"`
	TargetSpecies string                              `json:"targetSpecies"`
	Processed     int                                 `json:"processed"`
	Passed        int                                 `json:"passed"`
	Failed        int                                 `json:"failed"`
	Results       map[string]*specificity.CheckResult `json:"results"`
	Errors        map[string]string                   `json:"errors,omitempty"`
	Summary       Summary                             `json:"summary"`
}

// Runner executes one specificity check per primer file on a fixed-size
// worker pool.
type Runner struct {
	Analyzer *specificity.Analyzer
	Config   specificity.CheckConfig

	// Workers is the pool size; values below 1 fall back to 4.
	Workers int

	// Timeout bounds a single file's check. A check that overruns counts
	// as that file's failure, not the batch's. Zero disables the bound.
	Timeout time.Duration

	// Progress, when set, is invoked after each completion with the number
	// of files finished so far and the total submitted.
	Progress func(processed, total int)
}

const defaultWorkers = 4

func round1(v float64) float64 { return math.Round(v*10) / 10 }

type taskOutcome struct {
	path   string
	result *specificity.CheckResult
	err    error
}

// checkOne runs a single file's check, converting panics and overruns into
// errors. The scan has no suspension points, so the timeout is enforced by
// abandoning the goroutine rather than interrupting it.
func (r *Runner) checkOne(ctx context.Context, fr FileResult, target seqio.Template, offtargets []seqio.Template) (res *specificity.CheckResult, err error) {
	done := make(chan taskOutcome, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- taskOutcome{err: fmt.Errorf("panic during check: %v", p)}
			}
		}()
		cr, cerr := r.Analyzer.CheckSpeciesSpecificity(fr.Primers, target, offtargets, r.Config)
		done <- taskOutcome{result: cr, err: cerr}
	}()

	if r.Timeout > 0 {
		timer := time.NewTimer(r.Timeout)
		defer timer.Stop()
		select {
		case out := <-done:
			return out.result, out.err
		case <-timer.C:
			return nil, fmt.Errorf("check timed out after %s", r.Timeout)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	select {
	case out := <-done:
		return out.result, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Run checks every loaded primer file against the target and off-target
// templates. Files are distributed over the worker pool and collected in
// completion order; a failing file is logged and counted, siblings continue.
func (r *Runner) Run(ctx context.Context, in *Input, target seqio.Template, offtargets []seqio.Template) *Result {
	log := logrus.WithField("component", "batch")

	res := &Result{
		RunID:         uuid.NewString(),
		TargetSpecies: target.SpeciesName,
		Results:       map[string]*specificity.CheckResult{},
		Errors:        map[string]string{},
	}

	workers := r.Workers
	if workers < 1 {
		workers = defaultWorkers
	}

	jobs := make(chan FileResult)
	outcomes := make(chan taskOutcome)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for fr := range jobs {
				cr, err := r.checkOne(ctx, fr, target, offtargets)
				outcomes <- taskOutcome{path: fr.Path, result: cr, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, fr := range in.Files {
			if fr.Err != nil {
				// Load failures were already logged; report them through
				// the same channel so counts stay uniform.
				outcomes <- taskOutcome{path: fr.Path, err: fr.Err}
				continue
			}
			select {
			case jobs <- fr:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	total := len(in.Files)
	var scores []float64
	for out := range outcomes {
		res.Processed++
		if out.err != nil {
			res.Failed++
			res.Errors[out.path] = out.err.Error()
			log.WithField("file", out.path).WithError(out.err).Warn("file check failed")
		} else {
			res.Results[out.path] = out.result
			scores = append(scores, out.result.OverallScore)
			if out.result.IsSpecific {
				res.Passed++
			}
		}
		if r.Progress != nil {
			r.Progress(res.Processed, total)
		}
	}

	if len(scores) > 0 {
		sum, min, max := 0.0, scores[0], scores[0]
		for _, s := range scores {
			sum += s
			if s < min {
				min = s
			}
			if s > max {
				max = s
			}
		}
		res.Summary.AvgScore = round1(sum / float64(len(scores)))
		res.Summary.MinScore = min
		res.Summary.MaxScore = max
	}
	processed := res.Processed
	if processed < 1 {
		processed = 1
	}
	res.Summary.PassRate = round1(float64(res.Passed) / float64(processed) * 100)

	log.WithFields(logrus.Fields{
		"run":       res.RunID,
		"processed": res.Processed,
		"passed":    res.Passed,
		"failed":    res.Failed,
	}).Info("batch complete")
	return res
}
