package storage

import (
	"encoding/binary"
	"fmt"

	"go.vocdoni.io/dvote/db/prefixeddb"

	"github.com/vocdoni/kzg-sandbox/crypto/bn254"
	"github.com/vocdoni/kzg-sandbox/crypto/srs"
	"github.com/vocdoni/kzg-sandbox/types"
)

// latestSetupKey points at the version number of the most recent SRS.
var latestSetupKey = []byte("latest")

func setupKey(version uint64) []byte {
	key := make([]byte, 9)
	key[0] = 'v'
	binary.BigEndian.PutUint64(key[1:], version)
	return key
}

// SetSetup stores an SRS version and marks it as the latest one, in a single
// write transaction. Either both the version artifact and the latest pointer
// are persisted or neither is.
func (s *Storage) SetSetup(setup *srs.SRS) error {
	artifact := &SetupArtifact{
		Version:  setup.Version,
		G1Powers: make([]types.HexBytes, len(setup.G1Powers)),
		G2Powers: make([]types.HexBytes, len(setup.G2Powers)),
	}
	for i := range setup.G1Powers {
		artifact.G1Powers[i] = setup.G1Powers[i].Marshal()
		artifact.G2Powers[i] = setup.G2Powers[i].Marshal()
	}
	artVal, err := encodeArtifact(artifact)
	if err != nil {
		return fmt.Errorf("encode setup: %w", err)
	}
	latest := make([]byte, 8)
	binary.BigEndian.PutUint64(latest, setup.Version)
	latestVal, err := encodeArtifact(latest)
	if err != nil {
		return fmt.Errorf("encode latest setup pointer: %w", err)
	}
	tx := prefixeddb.NewPrefixedWriteTx(s.db.WriteTx(), setupPrefix)
	if err := tx.Set(setupKey(setup.Version), artVal); err != nil {
		tx.Discard()
		return err
	}
	if err := tx.Set(latestSetupKey, latestVal); err != nil {
		tx.Discard()
		return err
	}
	return tx.Commit()
}

// Setup loads a specific SRS version. Returns ErrNotFound if the version has
// never been stored.
func (s *Storage) Setup(version uint64) (*srs.SRS, error) {
	artifact := &SetupArtifact{}
	if err := s.getArtifact(setupPrefix, setupKey(version), artifact); err != nil {
		return nil, err
	}
	return decodeSetup(artifact)
}

// LatestSetup loads the most recently stored SRS version.
func (s *Storage) LatestSetup() (*srs.SRS, error) {
	var latest []byte
	if err := s.getArtifact(setupPrefix, latestSetupKey, &latest); err != nil {
		return nil, err
	}
	if len(latest) != 8 {
		return nil, fmt.Errorf("malformed latest setup pointer")
	}
	return s.Setup(binary.BigEndian.Uint64(latest))
}

func decodeSetup(artifact *SetupArtifact) (*srs.SRS, error) {
	if len(artifact.G1Powers) != len(artifact.G2Powers) {
		return nil, fmt.Errorf("mismatched setup array lengths")
	}
	setup := &srs.SRS{
		Version:  artifact.Version,
		G1Powers: make([]bn254.G1, len(artifact.G1Powers)),
		G2Powers: make([]bn254.G2, len(artifact.G2Powers)),
	}
	for i := range artifact.G1Powers {
		var err error
		if setup.G1Powers[i], err = bn254.G1FromBytes(artifact.G1Powers[i]); err != nil {
			return nil, fmt.Errorf("decode G1 power %d: %w", i, err)
		}
		if setup.G2Powers[i], err = bn254.G2FromBytes(artifact.G2Powers[i]); err != nil {
			return nil, fmt.Errorf("decode G2 power %d: %w", i, err)
		}
	}
	return setup, nil
}
