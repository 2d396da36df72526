package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vocdoni/kzg-sandbox/census"
	"github.com/vocdoni/kzg-sandbox/crypto/bn254"
)

// censusState returns the running census commitments.
// GET /census
func (a *API) censusState(w http.ResponseWriter, _ *http.Request) {
	snap := a.census.Snapshot()
	httpWriteJSON(w, &CensusState{
		KeysCommitment:   snap.Keys.Marshal(),
		ValuesCommitment: snap.Values.Marshal(),
		Participants:     snap.Participants,
		SetupVersion:     snap.SetupVersion,
	})
}

// register validates a registration proof and assigns the next free slot to
// the voter.
// POST /census/register
func (a *API) register(w http.ResponseWriter, r *http.Request) {
	req := &Registration{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrMalformedBody.Withf("could not decode request body: %v", err).Write(w)
		return
	}

	key, err := bn254.G2FromBytes(req.Key)
	if err != nil {
		ErrMalformedPoint.Withf("key: %v", err).Write(w)
		return
	}
	encodedKey, err := bn254.G2FromBytes(req.EncodedKey)
	if err != nil {
		ErrMalformedPoint.Withf("encoded key: %v", err).Write(w)
		return
	}
	artifact, err := bn254.G2FromBytes(req.EncodingArtifact)
	if err != nil {
		ErrMalformedPoint.Withf("encoding artifact: %v", err).Write(w)
		return
	}

	index, err := a.census.Register(req.Address, key, encodedKey, artifact)
	if err != nil {
		switch {
		case errors.Is(err, census.ErrAlreadyRegistered):
			ErrAlreadyRegistered.Write(w)
		case errors.Is(err, census.ErrRegistryFull):
			ErrRegistryFull.Write(w)
		case errors.Is(err, census.ErrInvalidRegistrationProof):
			ErrInvalidRegistration.Write(w)
		default:
			ErrGenericInternalServerError.WithErr(err).Write(w)
		}
		return
	}
	httpWriteJSON(w, &RegistrationResponse{Index: index})
}
