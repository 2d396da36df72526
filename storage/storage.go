// Package storage persists the artifacts of the commitment scheme in a
// prefixed key-value store: trusted setup versions, voter registrations, the
// running census state and per-process commitment snapshots. The following
// prefixes are used:
//   - 's/' for trusted setup (SRS) versions
//   - 'r/' for voter registrations
//   - 'cs/' for the running census state
//   - 'p/' for process snapshots
package storage

import (
	"errors"
	"fmt"

	"go.vocdoni.io/dvote/db"
	"go.vocdoni.io/dvote/db/prefixeddb"
)

var (
	// Prefixes for the keys in the database.
	setupPrefix        = []byte("s/")
	registrationPrefix = []byte("r/")
	censusStatePrefix  = []byte("cs/")
	processPrefix      = []byte("p/")
)

// ErrNotFound is returned when the requested artifact does not exist.
var ErrNotFound = errors.New("artifact not found")

// Storage wraps the database with typed accessors for the scheme artifacts.
type Storage struct {
	db db.Database
}

// New creates a new Storage instance on top of the given database.
func New(database db.Database) *Storage {
	return &Storage{db: database}
}

// Close closes the underlying database.
func (s *Storage) Close() {
	s.db.Close()
}

// setArtifact encodes and stores an artifact under prefix/key.
func (s *Storage) setArtifact(prefix, key []byte, artifact any) error {
	val, err := encodeArtifact(artifact)
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	wTx := prefixeddb.NewPrefixedWriteTx(s.db.WriteTx(), prefix)
	if err := wTx.Set(key, val); err != nil {
		wTx.Discard()
		return err
	}
	return wTx.Commit()
}

// getArtifact loads and decodes the artifact stored under prefix/key.
// Returns ErrNotFound if the key does not exist.
func (s *Storage) getArtifact(prefix, key []byte, out any) error {
	rTx := prefixeddb.NewPrefixedReader(s.db, prefix)
	data, err := rTx.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return ErrNotFound
		}
		return err
	}
	return decodeArtifact(data, out)
}

// listArtifacts returns the keys stored under the given prefix.
func (s *Storage) listArtifacts(prefix []byte) ([][]byte, error) {
	rTx := prefixeddb.NewPrefixedReader(s.db, prefix)
	var keys [][]byte
	if err := rTx.Iterate(nil, func(k, _ []byte) bool {
		key := make([]byte, len(k))
		copy(key, k)
		keys = append(keys, key)
		return true
	}); err != nil {
		return nil, fmt.Errorf("iterate artifacts: %w", err)
	}
	return keys, nil
}
