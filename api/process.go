package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vocdoni/kzg-sandbox/process"
	"github.com/vocdoni/kzg-sandbox/storage"
	"github.com/vocdoni/kzg-sandbox/types"
)

// newProcess creates a new voting process, snapshotting the current census
// commitments.
// POST /processes
func (a *API) newProcess(w http.ResponseWriter, r *http.Request) {
	req := &NewProcess{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrMalformedBody.Withf("could not decode request body: %v", err).Write(w)
		return
	}

	pid := &types.ProcessID{
		Address: req.Address,
		Nonce:   req.Nonce,
		ChainID: req.ChainID,
	}
	p, err := a.processes.Create(pid)
	if err != nil {
		if errors.Is(err, process.ErrProcessExists) {
			ErrProcessAlreadyExists.Write(w)
			return
		}
		ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	httpWriteJSON(w, p)
}

// processInfo returns the stored snapshot of a voting process.
// GET /processes/{processId}
func (a *API) processInfo(w http.ResponseWriter, r *http.Request) {
	var raw types.HexBytes
	if err := raw.FromString(chi.URLParam(r, ProcessURLParam)); err != nil {
		ErrMalformedProcessID.WithErr(err).Write(w)
		return
	}
	pid := &types.ProcessID{}
	if err := pid.Unmarshal(raw); err != nil {
		ErrMalformedProcessID.WithErr(err).Write(w)
		return
	}

	p, err := a.processes.Get(pid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ErrProcessNotFound.Write(w)
			return
		}
		ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	httpWriteJSON(w, p)
}
