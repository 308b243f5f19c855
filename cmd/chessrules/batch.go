package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// readBatch reads one FEN per line. Blank lines and lines starting with
// # are skipped; each item's source is name:line.
func readBatch(r io.Reader, name string) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, worker.WorkItem{
			Index:  len(items),
			FEN:    line,
			Source: fmt.Sprintf("%s:%d", name, lineNum),
		})
	}
	return items, scanner.Err()
}

// batchSummary counts results by status.
type batchSummary struct {
	total    int
	invalid  int
	dups     int
	finished int
}

func (b *batchSummary) add(r worker.ProcessResult) {
	b.total++
	switch r.Status {
	case worker.StatusInvalid:
		b.invalid++
	case worker.StatusDuplicate:
		b.dups++
	case worker.StatusCheckmate, worker.StatusStalemate, worker.StatusFiftyMove:
		b.finished++
	}
}

// runBatch analyses every position in r and writes the results in input
// order.
func runBatch(ctx context.Context, cfg *config.Config, r io.Reader, name string) error {
	items, err := readBatch(r, name)
	if err != nil {
		return err
	}
	cfg.Logf(config.Commentary, "Read %d position(s) from %s, %d worker(s)", len(items), name, cfg.Batch.NumWorkers())

	analyser := worker.NewAnalyser(cfg.Batch)
	results, err := analyser.AnalyseAll(ctx, items)
	if err != nil {
		return err
	}

	writer := output.NewResultWriter(cfg.OutputFile, cfg.Output)
	var summary batchSummary
	for _, res := range results {
		summary.add(res)
		if err := writer.WriteResult(res); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	if cfg.Batch.SkipDuplicates {
		cfg.Logf(config.Summary, "%d position(s), %d finished, %d duplicate(s), %d invalid.",
			summary.total, summary.finished, summary.dups, summary.invalid)
		full := ""
		if analyser.IndexFull() {
			full = " (limit reached)"
		}
		cfg.Logf(config.Summary, "%d unique position(s) remembered%s.", analyser.UniquePositions(), full)
	} else {
		cfg.Logf(config.Summary, "%d position(s), %d finished, %d invalid.",
			summary.total, summary.finished, summary.invalid)
	}
	return nil
}
