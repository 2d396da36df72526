package storage

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.vocdoni.io/dvote/db/prefixeddb"
)

// censusStateKey is the single key holding the running census state.
var censusStateKey = []byte("state")

// Registration loads the registration record of an address. Returns
// ErrNotFound if the address never registered.
func (s *Storage) Registration(addr common.Address) (*Registration, error) {
	reg := &Registration{}
	if err := s.getArtifact(registrationPrefix, addr.Bytes(), reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// ListRegistrations returns the addresses of all stored registrations.
func (s *Storage) ListRegistrations() ([]common.Address, error) {
	keys, err := s.listArtifacts(registrationPrefix)
	if err != nil {
		return nil, err
	}
	addrs := make([]common.Address, len(keys))
	for i, k := range keys {
		addrs[i] = common.BytesToAddress(k)
	}
	return addrs, nil
}

// SetRegistrationAndState stores a registration record together with the
// census state it produced, in a single write transaction. Either both are
// persisted or neither is.
func (s *Storage) SetRegistrationAndState(reg *Registration, state *CensusState) error {
	if reg == nil || state == nil {
		return fmt.Errorf("nil registration or census state")
	}
	regVal, err := encodeArtifact(reg)
	if err != nil {
		return fmt.Errorf("encode registration: %w", err)
	}
	stateVal, err := encodeArtifact(state)
	if err != nil {
		return fmt.Errorf("encode census state: %w", err)
	}
	tx := s.db.WriteTx()
	if err := prefixeddb.NewPrefixedWriteTx(tx, registrationPrefix).Set(reg.Address.Bytes(), regVal); err != nil {
		tx.Discard()
		return err
	}
	if err := prefixeddb.NewPrefixedWriteTx(tx, censusStatePrefix).Set(censusStateKey, stateVal); err != nil {
		tx.Discard()
		return err
	}
	return tx.Commit()
}

// CensusState loads the running census state. Returns ErrNotFound if no
// census has been persisted yet.
func (s *Storage) CensusState() (*CensusState, error) {
	state := &CensusState{}
	if err := s.getArtifact(censusStatePrefix, censusStateKey, state); err != nil {
		return nil, err
	}
	return state, nil
}
