package storage

import (
	"fmt"

	"github.com/vocdoni/kzg-sandbox/types"
)

// Process retrieves a process snapshot from the storage. Returns ErrNotFound
// if the process does not exist.
func (s *Storage) Process(pid *types.ProcessID) (*types.Process, error) {
	p := &types.Process{}
	if err := s.getArtifact(processPrefix, pid.Marshal(), p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetProcess stores a process snapshot.
func (s *Storage) SetProcess(data *types.Process) error {
	if data == nil {
		return fmt.Errorf("nil process data")
	}
	return s.setArtifact(processPrefix, data.ID, data)
}

// ListProcesses returns the IDs of the stored processes as raw byte slices.
func (s *Storage) ListProcesses() ([][]byte, error) {
	return s.listArtifacts(processPrefix)
}
