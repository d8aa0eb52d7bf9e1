// Package batch runs many independent stacktc.Closure calls
// concurrently, bounding concurrency with golang.org/x/sync/errgroup
// since each unit of work is a single bounded computation rather than
// a long-lived stream of tasks.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gitrdm/stacktc/pkg/stacktc"
)

// Result is the outcome of running Closure on one digraph.
type Result struct {
	Index int
	TC    *stacktc.TC
	Err   error
}

// Options configures Run.
type Options struct {
	// Workers bounds the number of concurrent Closure calls. <= 0
	// defaults to runtime.NumCPU().
	Workers int

	// FailFast switches to errgroup's native cancel-on-first-error
	// behavior: after the first contract violation, calls that have not
	// started yet are skipped (their Result.Err is the context error),
	// and Run returns that first error once the calls already in flight
	// have finished; a Closure call in flight is not interrupted. The
	// default collects every result, including individual errors, and
	// Run itself never returns a non-nil error.
	FailFast bool
}

// Run computes the transitive closure of every digraph concurrently,
// bounded by opts.Workers, and returns one Result per input in input
// order regardless of completion order. Each call to stacktc.Closure
// gets its own construction context (see pkg/stacktc's design), so
// running them concurrently here is safe without any locking inside
// the core.
func Run(ctx context.Context, digraphs []*stacktc.Digraph, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(digraphs) {
		workers = len(digraphs)
	}

	results := make([]Result, len(digraphs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, d := range digraphs {
		i, d := i, d
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Index: i, Err: err}
				if opts.FailFast {
					return err
				}
				return nil
			}
			tc, err := safeClosure(d)
			results[i] = Result{Index: i, TC: tc, Err: err}
			if err != nil && opts.FailFast {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// safeClosure recovers a panic from a core contract violation and
// turns it into an error, since batch callers process many digraphs
// from possibly untrusted sources and a single malformed one should
// not bring down the whole run.
func safeClosure(d *stacktc.Digraph) (tc *stacktc.TC, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ContractViolationError{Reason: r}
		}
	}()
	return stacktc.Closure(d), nil
}

// ContractViolationError wraps a panic recovered from a single
// Closure call so batch.Run can report it as a Result.Err instead of
// crashing the whole batch.
type ContractViolationError struct {
	Reason any
}

func (e *ContractViolationError) Error() string {
	return "batch: stacktc contract violation: " + errString(e.Reason)
}

func errString(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return "unknown panic value"
}
