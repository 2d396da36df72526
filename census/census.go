// Package census maintains the commitment-backed voter registry: a running
// G2 commitment over the registered public keys, a running G1 commitment
// over the registered balances, and the slot assignment for each voter.
// Registrations are validated against the polynomial commitment engine, so
// the registry never needs to inspect individual coefficients.
package census

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.vocdoni.io/dvote/log"

	"github.com/vocdoni/kzg-sandbox/crypto/bn254"
	"github.com/vocdoni/kzg-sandbox/crypto/polycommit"
	"github.com/vocdoni/kzg-sandbox/crypto/srs"
	"github.com/vocdoni/kzg-sandbox/storage"
	"github.com/vocdoni/kzg-sandbox/types"
)

var (
	// ErrAlreadyRegistered is returned when an address attempts to register a
	// second time. The first registration is left untouched.
	ErrAlreadyRegistered = errors.New("address already registered")
	// ErrRegistryFull is returned when every coefficient slot has been
	// assigned.
	ErrRegistryFull = errors.New("registry full")
	// ErrInvalidRegistrationProof is returned when the single-value
	// consistency proof of a registration does not hold.
	ErrInvalidRegistrationProof = errors.New("invalid registration proof")
)

// BalanceSource reports the token balance of a registrant. The bookkeeping
// itself lives outside the scheme; the registry only folds the reported
// balance into the values commitment at registration time.
type BalanceSource interface {
	BalanceOf(addr common.Address) *big.Int
}

// Snapshot is an immutable copy of the census commitments, taken for a
// voting round. Registrations performed after the copy do not affect it.
type Snapshot struct {
	Keys         bn254.G2
	Values       bn254.G1
	Participants uint64
	SetupVersion uint64
}

// Census is the commitment-backed registry. All state changing operations
// are serialized through a single lock and are all-or-nothing: a failed
// registration or setup update leaves no trace.
type Census struct {
	mu        sync.Mutex
	setup     *srs.SRS
	keys      bn254.G2
	values    bn254.G1
	nextIndex uint64
	indexes   map[common.Address]uint64
	balances  BalanceSource
	stg       *storage.Storage
}

// New creates a census on top of the given storage, restoring any previously
// persisted state. With a fresh database it starts from the initial SRS
// (secret s=1) and an empty registry with the next free slot at 1; slot 0 is
// the "unregistered" sentinel and is never assigned. The balance source may
// be nil, in which case every registrant is treated as holding zero value.
func New(stg *storage.Storage, balances BalanceSource) (*Census, error) {
	c := &Census{
		indexes:   make(map[common.Address]uint64),
		nextIndex: 1,
		balances:  balances,
		stg:       stg,
	}

	setup, err := stg.LatestSetup()
	switch {
	case err == nil:
		c.setup = setup
	case errors.Is(err, storage.ErrNotFound):
		c.setup = srs.New()
		if err := stg.SetSetup(c.setup); err != nil {
			return nil, fmt.Errorf("persist initial setup: %w", err)
		}
	default:
		return nil, fmt.Errorf("load setup: %w", err)
	}

	if err := c.restore(); err != nil {
		return nil, err
	}
	return c, nil
}

// restore loads the persisted census state and slot assignments.
func (c *Census) restore() error {
	state, err := c.stg.CensusState()
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load census state: %w", err)
	}
	if c.keys, err = bn254.G2FromBytes(state.KeysCommitment); err != nil {
		return fmt.Errorf("decode keys commitment: %w", err)
	}
	if c.values, err = bn254.G1FromBytes(state.ValuesCommitment); err != nil {
		return fmt.Errorf("decode values commitment: %w", err)
	}
	c.nextIndex = state.NextIndex

	addrs, err := c.stg.ListRegistrations()
	if err != nil {
		return fmt.Errorf("list registrations: %w", err)
	}
	for _, addr := range addrs {
		reg, err := c.stg.Registration(addr)
		if err != nil {
			return fmt.Errorf("load registration %s: %w", addr, err)
		}
		c.indexes[addr] = reg.Index
	}
	return nil
}

// CurrentSetup returns the SRS version the census is running on. The SRS is
// immutable; callers must not modify the returned arrays.
func (c *Census) CurrentSetup() *srs.SRS {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setup
}

// ApplySetupUpdate validates a setup update against the current SRS and, if
// valid, swaps the next version in and persists it. On any failure the
// current version stays in place.
func (c *Census) ApplySetupUpdate(up *srs.UpdateProof) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.setup.Update(up)
	if err != nil {
		return err
	}
	if err := c.stg.SetSetup(next); err != nil {
		return fmt.Errorf("persist setup: %w", err)
	}
	c.setup = next
	log.Infow("setup updated", "version", next.Version)
	return nil
}

// Register assigns the next free slot to addr and folds its encoded key into
// the keys commitment. key must commit to the voter's key value at position
// 0 (i.e. it is the plain public key), encodedKey to the same value at the
// assigned slot, and encodingArtifact to the same value at MaxDegree; the
// three together satisfy the single-value consistency proof, which is what
// guarantees the registration affects no slot but its own. If the registrant
// holds a nonzero balance, the matching value term is folded into the values
// commitment. Returns the assigned slot index.
func (c *Census) Register(addr common.Address, key, encodedKey, encodingArtifact bn254.G2) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.indexes[addr]; ok {
		return 0, ErrAlreadyRegistered
	}
	if c.nextIndex >= types.DataArraySize {
		return 0, ErrRegistryFull
	}

	index := c.nextIndex
	ok, err := polycommit.VerifySingleValue(c.setup, key, encodedKey, encodingArtifact, int(index))
	if err != nil {
		return 0, fmt.Errorf("verify registration proof: %w", err)
	}
	if !ok {
		return 0, ErrInvalidRegistrationProof
	}

	newKeys := c.keys.Add(encodedKey)
	newValues := c.values
	var balance *big.Int
	if c.balances != nil {
		balance = c.balances.BalanceOf(addr)
	}
	if balance != nil && balance.Sign() != 0 {
		term, err := polycommit.CommitG1(c.setup, balance, int(index))
		if err != nil {
			return 0, fmt.Errorf("commit balance term: %w", err)
		}
		newValues = newValues.Add(term)
	}

	reg := &storage.Registration{
		Address:    addr,
		Index:      index,
		Key:        key.Marshal(),
		EncodedKey: encodedKey.Marshal(),
	}
	if balance != nil && balance.Sign() != 0 {
		reg.Value = balance.Bytes()
	}
	state := &storage.CensusState{
		KeysCommitment:   newKeys.Marshal(),
		ValuesCommitment: newValues.Marshal(),
		NextIndex:        index + 1,
		SetupVersion:     c.setup.Version,
	}
	if err := c.stg.SetRegistrationAndState(reg, state); err != nil {
		return 0, fmt.Errorf("persist registration: %w", err)
	}

	c.keys = newKeys
	c.values = newValues
	c.indexes[addr] = index
	c.nextIndex = index + 1
	log.Infow("voter registered", "address", addr.Hex(), "index", index)
	return index, nil
}

// Index returns the slot assigned to addr, or 0 if it never registered.
func (c *Census) Index(addr common.Address) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.indexes[addr]
}

// Snapshot returns an immutable copy of the census commitments.
func (c *Census) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Keys:         c.keys,
		Values:       c.values,
		Participants: c.nextIndex - 1,
		SetupVersion: c.setup.Version,
	}
}
