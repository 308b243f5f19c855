// Package storage keeps an archive of games in BadgerDB.
package storage

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Key prefixes. A game is stored under game/<id>; the position index holds
// one empty value per game under pos/<zobrist>/<id>.
const (
	prefixGame     = "game/"
	prefixPosition = "pos/"
)

// GameRecord is the persisted form of a game: the start position and the
// moves played from it, plus the derived final position and result.
type GameRecord struct {
	ID       string    `json:"id"`
	StartFEN string    `json:"start_fen"`
	Moves    []string  `json:"moves"`
	FEN      string    `json:"fen"`
	Result   string    `json:"result"`
	Hash     uint64    `json:"hash"`
	Updated  time.Time `json:"updated"`
}

// NewGameRecord captures the committed state of e under id. A pending
// promotion is not part of the record.
func NewGameRecord(id string, e *engine.Engine) *GameRecord {
	return &GameRecord{
		ID:       id,
		StartFEN: e.StartFEN(),
		Moves:    e.Moves(),
		FEN:      e.FEN(),
		Result:   e.Result().String(),
		Hash:     hashing.Zobrist(e.Board()),
	}
}

// GameStore wraps BadgerDB for persistent storage of games.
type GameStore struct {
	db  *badger.DB
	log io.Writer
}

// Open opens the store described by cfg. An in-memory store is discarded
// on Close. Progress messages go to logw when it is not nil.
func Open(cfg config.StorageConfig, logw io.Writer) (*GameStore, error) {
	var opts badger.Options
	switch {
	case cfg.InMemory:
		opts = badger.DefaultOptions("").WithInMemory(true)
	case cfg.Dir != "":
		opts = badger.DefaultOptions(cfg.Dir)
	default:
		return nil, errors.Wrap(errors.ErrInvalidConfig, "storage needs a directory or in-memory mode")
	}
	opts.Logger = nil // Disable badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open game store: %w", err)
	}
	s := &GameStore{db: db, log: logw}
	if cfg.InMemory {
		s.logf("opened in-memory game store")
	} else {
		s.logf("opened game store at %s", cfg.Dir)
	}
	return s, nil
}

// Close closes the database.
func (s *GameStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(prefixGame + id)
}

func positionPrefix(hash uint64) string {
	return fmt.Sprintf("%s%016x/", prefixPosition, hash)
}

func positionKey(hash uint64, id string) []byte {
	return []byte(positionPrefix(hash) + id)
}

// Save stores rec under its ID, replacing any earlier record and moving
// its position index entry.
func (s *GameStore) Save(rec *GameRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("save game: empty id: %w", errors.ErrInvalidConfig)
	}
	rec.Updated = time.Now()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		previous, err := getRecord(txn, rec.ID)
		if err != nil && !stderrors.Is(err, errors.ErrGameNotFound) {
			return err
		}
		if previous != nil && previous.Hash != rec.Hash {
			if err := txn.Delete(positionKey(previous.Hash, rec.ID)); err != nil {
				return err
			}
		}
		if err := txn.Set(gameKey(rec.ID), data); err != nil {
			return err
		}
		return txn.Set(positionKey(rec.Hash, rec.ID), nil)
	})
	if err != nil {
		return errors.Wrapf(err, "save game %q", rec.ID)
	}
	s.logf("saved game %s (%d moves)", rec.ID, len(rec.Moves))
	return nil
}

// Load returns the record stored under id, or ErrGameNotFound.
func (s *GameStore) Load(id string) (*GameRecord, error) {
	var rec *GameRecord
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = getRecord(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// getRecord reads and decodes one record inside txn.
func getRecord(txn *badger.Txn, id string) (*GameRecord, error) {
	item, err := txn.Get(gameKey(id))
	if err == badger.ErrKeyNotFound {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "game %q", id)
	}
	if err != nil {
		return nil, err
	}

	rec := &GameRecord{}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, rec)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "decode game %q", id)
	}
	return rec, nil
}

// Delete removes the record stored under id and its index entry.
func (s *GameStore) Delete(id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		rec, err := getRecord(txn, id)
		if err != nil {
			return err
		}
		if err := txn.Delete(positionKey(rec.Hash, id)); err != nil {
			return err
		}
		return txn.Delete(gameKey(id))
	})
	if err != nil {
		return err
	}
	s.logf("deleted game %s", id)
	return nil
}

// List returns the IDs of all stored games in sorted order.
func (s *GameStore) List() ([]string, error) {
	return s.keysWithPrefix(prefixGame)
}

// FindByPosition returns the IDs of games whose final position has the
// given Zobrist hash.
func (s *GameStore) FindByPosition(hash uint64) ([]string, error) {
	return s.keysWithPrefix(positionPrefix(hash))
}

// keysWithPrefix lists the key suffixes after prefix without reading values.
func (s *GameStore) keysWithPrefix(prefix string) ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			ids = append(ids, strings.TrimPrefix(string(it.Item().Key()), prefix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

// Restore rebuilds an engine from the record stored under id by replaying
// its moves from the start position.
func (s *GameStore) Restore(id string) (*engine.Engine, error) {
	rec, err := s.Load(id)
	if err != nil {
		return nil, err
	}
	return rec.Replay()
}

// Replay rebuilds the game described by the record.
func (rec *GameRecord) Replay() (*engine.Engine, error) {
	e, err := engine.NewFromFEN(rec.StartFEN)
	if err != nil {
		return nil, errors.Wrapf(err, "game %q", rec.ID)
	}
	for _, m := range rec.Moves {
		if err := e.ApplyUCI(m); err != nil {
			return nil, errors.Wrapf(err, "game %q", rec.ID)
		}
	}
	return e, nil
}

func (s *GameStore) logf(format string, args ...interface{}) {
	if s.log != nil {
		fmt.Fprintf(s.log, format+"\n", args...)
	}
}
