package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// BatchConfig holds settings for analysing many positions at once.
type BatchConfig struct {
	// Workers is the number of analysis goroutines (0 = one per CPU)
	Workers int

	// BufferSize is the capacity of the work and result channels
	// (0 = twice the number of workers)
	BufferSize int

	// SkipDuplicates reports repeated positions without analysing them again
	SkipDuplicates bool

	// MaxPositions limits the positions remembered for duplicate detection
	// (0 = unlimited)
	MaxPositions int

	// PerftDepth adds a perft node count to each result when positive
	PerftDepth int
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{}
}

// NumWorkers resolves the worker count.
func (b *BatchConfig) NumWorkers() int {
	if b.Workers <= 0 {
		return runtime.NumCPU()
	}
	return b.Workers
}

// Validate checks that the batch configuration is valid.
func (b *BatchConfig) Validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 0 {
		return fmt.Errorf("buffer size (%d) must not be negative: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	if b.MaxPositions < 0 {
		return fmt.Errorf("duplicate capacity (%d) must not be negative: %w", b.MaxPositions, errors.ErrInvalidConfig)
	}
	if b.PerftDepth < 0 || b.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d out of range 0-%d: %w", b.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	return nil
}

// MaxPerftDepth bounds perft requests; deeper counts take minutes.
const MaxPerftDepth = 6
