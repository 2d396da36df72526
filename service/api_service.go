// Package service wires the storage, census and process components together
// and manages their lifecycles.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/vocdoni/kzg-sandbox/api"
	"github.com/vocdoni/kzg-sandbox/census"
	"github.com/vocdoni/kzg-sandbox/process"
	"github.com/vocdoni/kzg-sandbox/storage"
)

// APIService represents a service that manages the HTTP API server.
type APIService struct {
	storage   *storage.Storage
	census    *census.Census
	processes *process.Manager
	api       *api.API
	mu        sync.Mutex
	cancel    context.CancelFunc
	host      string
	port      int
}

// NewAPI creates a new APIService instance on top of an existing storage. It
// restores the census from storage (or initializes it with the starting SRS)
// and builds the process manager on top.
func NewAPI(stg *storage.Storage, balances census.BalanceSource, host string, port int) (*APIService, error) {
	c, err := census.New(stg, balances)
	if err != nil {
		return nil, fmt.Errorf("failed to create census: %w", err)
	}
	return &APIService{
		storage:   stg,
		census:    c,
		processes: process.New(stg, c),
		host:      host,
		port:      port,
	}, nil
}

// Census returns the census instance managed by the service.
func (as *APIService) Census() *census.Census {
	return as.census
}

// Start begins the API server. It returns an error if the service is already
// running or if it fails to start.
func (as *APIService) Start(ctx context.Context) error {
	as.mu.Lock()
	defer as.mu.Unlock()

	if as.cancel != nil {
		return fmt.Errorf("service already running")
	}

	_, as.cancel = context.WithCancel(ctx)

	var err error
	as.api, err = api.New(&api.APIConfig{
		Host:      as.host,
		Port:      as.port,
		Census:    as.census,
		Processes: as.processes,
	})
	if err != nil {
		as.cancel = nil
		return fmt.Errorf("failed to start API server: %w", err)
	}
	return nil
}

// Stop halts the API server and closes the storage.
func (as *APIService) Stop() {
	as.mu.Lock()
	defer as.mu.Unlock()

	if as.cancel != nil {
		as.cancel()
		as.cancel = nil
	}
	as.storage.Close()
}
