package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vocdoni/kzg-sandbox/crypto/bn254"
	"github.com/vocdoni/kzg-sandbox/crypto/srs"
	"github.com/vocdoni/kzg-sandbox/types"
)

// setup returns the current SRS.
// GET /setup
func (a *API) setup(w http.ResponseWriter, _ *http.Request) {
	httpWriteJSON(w, marshalSetup(a.census.CurrentSetup()))
}

// setupUpdate validates and applies a trusted setup update. The update proof
// itself must have been generated locally by the contributor; this endpoint
// only ever sees the public candidate arrays and the proof point.
// POST /setup/update
func (a *API) setupUpdate(w http.ResponseWriter, r *http.Request) {
	req := &SetupUpdate{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrMalformedBody.Withf("could not decode request body: %v", err).Write(w)
		return
	}

	// bound the decode loops before touching any point
	if len(req.G1Powers) != types.MaxDegree+1 || len(req.G2Powers) != types.MaxDegree+1 {
		ErrInvalidSetupUpdate.Withf("arrays must have %d entries", types.MaxDegree+1).Write(w)
		return
	}
	up := &srs.UpdateProof{
		G1Powers: make([]bn254.G1, len(req.G1Powers)),
		G2Powers: make([]bn254.G2, len(req.G2Powers)),
	}
	var err error
	if up.Proof, err = bn254.G1FromBytes(req.Proof); err != nil {
		ErrMalformedPoint.Withf("proof point: %v", err).Write(w)
		return
	}
	for i, raw := range req.G1Powers {
		if up.G1Powers[i], err = bn254.G1FromBytes(raw); err != nil {
			ErrMalformedPoint.Withf("G1 power %d: %v", i, err).Write(w)
			return
		}
	}
	for i, raw := range req.G2Powers {
		if up.G2Powers[i], err = bn254.G2FromBytes(raw); err != nil {
			ErrMalformedPoint.Withf("G2 power %d: %v", i, err).Write(w)
			return
		}
	}

	if err := a.census.ApplySetupUpdate(up); err != nil {
		switch {
		case errors.Is(err, srs.ErrInvalidSize),
			errors.Is(err, srs.ErrInvalidDegreeZeroTerm),
			errors.Is(err, srs.ErrInvalidUpdateProof):
			ErrInvalidSetupUpdate.WithErr(err).Write(w)
		default:
			ErrGenericInternalServerError.WithErr(err).Write(w)
		}
		return
	}
	httpWriteJSON(w, marshalSetup(a.census.CurrentSetup()))
}

func marshalSetup(s *srs.SRS) *Setup {
	resp := &Setup{
		Version:  s.Version,
		G1Powers: make([]types.HexBytes, len(s.G1Powers)),
		G2Powers: make([]types.HexBytes, len(s.G2Powers)),
	}
	for i := range s.G1Powers {
		resp.G1Powers[i] = s.G1Powers[i].Marshal()
		resp.G2Powers[i] = s.G2Powers[i].Marshal()
	}
	return resp
}
