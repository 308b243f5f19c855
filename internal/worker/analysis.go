package worker

import (
	"context"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Status summarises the state of an analysed position.
type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCheckmate Status = "checkmate"
	StatusStalemate Status = "stalemate"
	StatusFiftyMove Status = "fifty-move"
	StatusDuplicate Status = "duplicate"
	StatusInvalid   Status = "invalid"
)

// ProcessResult represents the result of analysing one position.
type ProcessResult struct {
	Index       int
	Source      string
	FEN         string // Normalised position, or the input text when invalid
	Status      Status
	Turn        chess.Colour
	LegalMoves  []string // UCI, one entry per promotion piece
	InCheck     bool
	Result      chess.Result
	Perft       uint64 // Leaf count at the configured depth, 0 if not requested
	DuplicateOf string // Source of the earlier identical position
	Err         error
}

// Analyser turns work items into results. It is safe for concurrent use:
// every call builds its own engine and only the duplicate index is shared.
type Analyser struct {
	cfg  *config.BatchConfig
	seen *hashing.ThreadSafePositionIndex
}

// NewAnalyser creates an analyser using the batch settings in cfg.
func NewAnalyser(cfg *config.BatchConfig) *Analyser {
	a := &Analyser{cfg: cfg}
	if cfg.SkipDuplicates {
		a.seen = hashing.NewThreadSafePositionIndex(cfg.MaxPositions)
	}
	return a
}

// Process analyses a single position. It matches ProcessFunc.
func (a *Analyser) Process(ctx context.Context, item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index, Source: item.Source, FEN: item.FEN}

	e, err := engine.NewFromFEN(item.FEN)
	if err != nil {
		result.Status = StatusInvalid
		result.Err = err
		return result
	}
	result.FEN = e.FEN()
	result.Turn = e.Turn()

	if a.seen != nil {
		occ := hashing.NewOccurrence(e.Board(), item.Source)
		if a.seen.CheckAndAdd(occ) {
			earlier, _ := a.seen.Lookup(occ)
			result.Status = StatusDuplicate
			result.DuplicateOf = earlier.Source
			return result
		}
	}

	for _, m := range e.AllPossibleMoves(e.Turn()) {
		result.LegalMoves = append(result.LegalMoves, m.String())
	}
	result.InCheck = e.IsCheck(e.Turn())
	result.Result = e.Result()
	result.Status = statusOf(e, len(result.LegalMoves))

	if a.cfg.PerftDepth > 0 && ctx.Err() == nil {
		result.Perft = e.Perft(a.cfg.PerftDepth)
	}
	return result
}

// statusOf classifies a position with n legal moves for the side to move.
func statusOf(e *engine.Engine, n int) Status {
	switch {
	case n == 0 && e.IsCheck(e.Turn()):
		return StatusCheckmate
	case n == 0:
		return StatusStalemate
	case e.IsGameOver():
		return StatusFiftyMove
	}
	return StatusOngoing
}

// UniquePositions returns the number of distinct positions remembered for
// duplicate detection. It is 0 when duplicates are not being skipped.
func (a *Analyser) UniquePositions() int {
	if a.seen == nil {
		return 0
	}
	return a.seen.UniqueCount()
}

// IndexFull reports whether the duplicate index hit its capacity, after
// which new positions are no longer remembered.
func (a *Analyser) IndexFull() bool {
	return a.seen != nil && a.seen.IsFull()
}

// AnalyseAll runs every item through a pool sized by the batch settings and
// returns the results in input order.
func (a *Analyser) AnalyseAll(ctx context.Context, items []WorkItem) ([]ProcessResult, error) {
	workers := a.cfg.NumWorkers()
	buffer := a.cfg.BufferSize
	if buffer == 0 {
		buffer = 2 * workers
	}

	pool := NewPool(workers, buffer, a.Process)
	pool.Start(ctx)

	errc := make(chan error, 1)
	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		errc <- pool.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range pool.Results() {
		results = append(results, r)
	}
	if err := <-errc; err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results, nil
}
