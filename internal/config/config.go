// Package config provides configuration for the chessrules tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Verbosity levels.
const (
	Silent     = 0 // nothing on the log
	Summary    = 1 // one line per batch or session
	Commentary = 2 // running commentary per command
)

// Config holds all program configuration.
type Config struct {
	// Verbosity is one of Silent, Summary or Commentary
	Verbosity int

	// StartFEN is the position new sessions start from ("" = initial position)
	StartFEN string

	// Sub-configs
	Storage *StorageConfig
	Output  *OutputConfig
	Batch   *BatchConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Storage:    NewStorageConfig(),
		Output:     NewOutputConfig(),
		Batch:      NewBatchConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a log line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks the configuration and its sub-configs.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	return c.Batch.Validate()
}
