// Package process manages voting rounds on top of the census: creating a
// process freezes a copy of the census commitments, so the round tallies
// against a fixed voter set no matter how the registry evolves afterwards.
//
// Tallying itself is out of scope here. In particular, deriving the
// aggregate public key of an arbitrary subset of voters from the keys
// commitment requires cooperation from the excluded voters; that protocol
// level gap is documented, not solved.
package process

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.vocdoni.io/dvote/log"

	"github.com/vocdoni/kzg-sandbox/census"
	"github.com/vocdoni/kzg-sandbox/storage"
	"github.com/vocdoni/kzg-sandbox/types"
)

// ErrProcessExists is returned when a process with the same ID was already
// created.
var ErrProcessExists = errors.New("process already exists")

// Manager creates and serves voting processes. Creation is serialized through
// a single lock so the existence check and the write happen as one step.
type Manager struct {
	mu     sync.Mutex
	stg    *storage.Storage
	census *census.Census
}

// New creates a process manager bound to the given storage and census.
func New(stg *storage.Storage, c *census.Census) *Manager {
	return &Manager{stg: stg, census: c}
}

// Create snapshots the census commitments into a new process and persists
// it. The snapshot has copy semantics: later registrations do not affect it.
func (m *Manager) Create(pid *types.ProcessID) (*types.Process, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.stg.Process(pid); err == nil {
		return nil, ErrProcessExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("check process: %w", err)
	}

	snap := m.census.Snapshot()
	p := &types.Process{
		ID:               pid.Marshal(),
		KeysCommitment:   snap.Keys.Marshal(),
		ValuesCommitment: snap.Values.Marshal(),
		Participants:     snap.Participants,
		SetupVersion:     snap.SetupVersion,
		StartTime:        time.Now(),
	}
	if err := m.stg.SetProcess(p); err != nil {
		return nil, fmt.Errorf("persist process: %w", err)
	}
	log.Infow("process created", "processId", pid.String(), "participants", snap.Participants)
	return p, nil
}

// Get returns a stored process snapshot. Returns storage.ErrNotFound if the
// process does not exist.
func (m *Manager) Get(pid *types.ProcessID) (*types.Process, error) {
	return m.stg.Process(pid)
}

// List returns the IDs of all stored processes.
func (m *Manager) List() ([]types.HexBytes, error) {
	raw, err := m.stg.ListProcesses()
	if err != nil {
		return nil, err
	}
	pids := make([]types.HexBytes, len(raw))
	for i, r := range raw {
		pids[i] = r
	}
	return pids, nil
}
