package analyze

import (
	"context"
	"fmt"

	"github.com/fwojciec/seoscan"
)

// Runner analyzes a list of URLs in order and stores each analysis.
type Runner struct {
	Analyzer *Analyzer
	Records  seoscan.RecordStore
}

// Result holds the outcome of a batch run.
type Result struct {
	Total  int
	Saved  []string // record names, in URL order
	Failed []Failure
}

// Failure is a URL that could not be analyzed or stored.
type Failure struct {
	URL string
	Err error
}

// OK reports whether every URL was analyzed and stored.
func (r *Result) OK() bool {
	return len(r.Failed) == 0
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Name      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run analyzes every URL sequentially. A URL whose analysis fails is recorded
// and the run continues with the next one. A failure to store a record stops
// the run, as does canceling ctx; the URLs processed until then are reflected
// in the result.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	result := &Result{Total: len(urls)}
	notify := func(e ProgressEvent) {
		if progress != nil {
			e.Total = result.Total
			progress(e)
		}
	}

	notify(ProgressEvent{Type: ProgressStarted})

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		a, err := r.Analyzer.Analyze(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			result.Failed = append(result.Failed, Failure{URL: url, Err: err})
			notify(ProgressEvent{Type: ProgressFailed, Completed: i + 1, URL: url, Error: err})
			continue
		}

		name, err := r.save(ctx, a)
		if err != nil {
			return result, err
		}

		result.Saved = append(result.Saved, name)
		notify(ProgressEvent{Type: ProgressCompleted, Completed: i + 1, URL: url, Name: name})
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: len(urls)})
	return result, nil
}

// RunOne analyzes a single URL and stores its record, returning the record name.
// Nothing is stored when the analysis fails.
func (r *Runner) RunOne(ctx context.Context, url string) (string, error) {
	a, err := r.Analyzer.Analyze(ctx, url)
	if err != nil {
		return "", err
	}
	return r.save(ctx, a)
}

func (r *Runner) save(ctx context.Context, a *seoscan.PageAnalysis) (string, error) {
	name, err := r.Records.SaveRecord(ctx, a)
	if err != nil {
		return "", fmt.Errorf("save record %s: %w", a.URL, err)
	}
	return name, nil
}
