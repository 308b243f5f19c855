package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// StorageConfig holds settings for the game archive.
type StorageConfig struct {
	// Dir is the BadgerDB directory
	Dir string

	// InMemory keeps the archive in memory only; it is lost on exit
	InMemory bool
}

// NewStorageConfig creates a StorageConfig with default values.
// Storage is disabled by default.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{}
}

// Enabled reports whether an archive should be opened.
func (s *StorageConfig) Enabled() bool {
	return s.InMemory || s.Dir != ""
}

// Validate checks that the storage configuration is valid.
func (s *StorageConfig) Validate() error {
	if s.InMemory && s.Dir != "" {
		return fmt.Errorf("storage directory %q given with in-memory storage: %w", s.Dir, errors.ErrInvalidConfig)
	}
	return nil
}
