// processor.go - Record parsing pipeline, duplicate reporting, and statistics
package main

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// lintOptions collects the processing switches derived from command-line flags.
type lintOptions struct {
	Workers     int
	Quiet       bool
	ReportDupes bool
	ExactDupes  bool
	AddStatus   bool
	MaxTracked  int
}

// processor runs FEN records through parsing, duplicate detection, and output.
type processor struct {
	opts    lintOptions
	out     io.Writer
	errOut  io.Writer
	tracker *hashing.Tracker

	valid   int
	invalid int
}

func newProcessor(opts lintOptions, out, errOut io.Writer) *processor {
	pr := &processor{opts: opts, out: out, errOut: errOut}
	if opts.ReportDupes {
		pr.tracker = hashing.NewTracker(opts.ExactDupes, opts.MaxTracked)
	}
	return pr
}

// processInput reads one FEN record per line from r, skipping blank lines and
// '#' comments. Diagnostics carry line numbers that count the input as read,
// skipped lines included. It returns false if any record failed to parse;
// repeated positions alone never fail a run.
func (pr *processor) processInput(r io.Reader, name string) bool {
	var items []worker.Item

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, worker.Item{Line: line, Index: lineNo})
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(pr.errOut, "Error reading %s: %v\n", name, err)
		return false
	}

	numWorkers := pr.opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Use parallel parsing for multiple workers and enough records
	var results []worker.Result
	if numWorkers > 1 && len(items) > 2 {
		results = parseParallel(items, numWorkers)
	} else {
		results = parseSequential(items)
	}

	return pr.report(name, results)
}

// parseRecord parses a single record. It runs in a worker goroutine under
// parallel processing, so it must touch no processor state.
func parseRecord(item worker.Item) worker.Result {
	result := worker.Result{Line: item.Line, Index: item.Index}

	pos, err := engine.ParseFEN(item.Line)
	if err != nil {
		result.Err = err
		return result
	}

	result.Payload = pos
	return result
}

// parseSequential parses items on the calling goroutine, in input order.
func parseSequential(items []worker.Item) []worker.Result {
	results := make([]worker.Result, 0, len(items))
	for _, item := range items {
		results = append(results, parseRecord(item))
	}
	return results
}

// parseParallel parses items using a worker pool. Results arrive in
// completion order and are resorted by input line, so duplicate reporting
// downstream stays deterministic regardless of worker count.
func parseParallel(items []worker.Item, numWorkers int) []worker.Result {
	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(numWorkers, bufferSize, parseRecord)
	pool.Start()

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]worker.Result, 0, len(items))
	for result := range pool.Results() {
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}

// report writes diagnostics and canonical records for one batch of results
// and accumulates the record counters. Results must be in input order.
func (pr *processor) report(name string, results []worker.Result) bool {
	ok := true
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintf(pr.errOut, "%s:%d: %v\n", name, result.Index, result.Err)
			pr.invalid++
			ok = false
			continue
		}

		pos, parsed := result.Payload.(*engine.Position)
		if !parsed {
			continue
		}
		pr.valid++

		if pr.tracker != nil && pr.tracker.CheckAndAdd(pos) {
			fmt.Fprintf(pr.errOut, "%s:%d: repeated position\n", name, result.Index)
		}

		if pr.opts.Quiet {
			continue
		}
		if pr.opts.AddStatus {
			if status := positionStatus(pos); status != "" {
				fmt.Fprintf(pr.out, "%s ; %s\n", pos.FEN(), status)
				continue
			}
		}
		fmt.Fprintln(pr.out, pos.FEN())
	}
	return ok
}

// positionStatus names the standing of the side to move, or "" when the
// position holds neither check nor mate.
func positionStatus(pos *engine.Position) string {
	switch pos.Status() {
	case chess.ResultOKMate:
		return "mate"
	case chess.ResultOKCheck:
		return "check"
	default:
		return ""
	}
}

// reportStatistics prints the final record counts to the error stream.
func (pr *processor) reportStatistics() {
	total := pr.valid + pr.invalid
	if pr.tracker != nil {
		fmt.Fprintf(pr.errOut, "%d record(s) valid, %d invalid, %d repeated out of %d.\n",
			pr.valid, pr.invalid, pr.tracker.DuplicateCount(), total)
	} else {
		fmt.Fprintf(pr.errOut, "%d record(s) valid, %d invalid out of %d.\n",
			pr.valid, pr.invalid, total)
	}
}
