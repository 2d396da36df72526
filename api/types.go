package api

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/vocdoni/kzg-sandbox/types"
)

// Setup carries one SRS version, with every group element in its canonical
// byte encoding.
type Setup struct {
	Version  uint64           `json:"version"`
	G1Powers []types.HexBytes `json:"g1Powers"`
	G2Powers []types.HexBytes `json:"g2Powers"`
}

// SetupUpdate is the request to apply a trusted setup update.
type SetupUpdate struct {
	G1Powers []types.HexBytes `json:"g1Powers"`
	G2Powers []types.HexBytes `json:"g2Powers"`
	Proof    types.HexBytes   `json:"proof"`
}

// Registration is the request to register a voter key in the census.
type Registration struct {
	Address          common.Address `json:"address"`
	Key              types.HexBytes `json:"key"`
	EncodedKey       types.HexBytes `json:"encodedKey"`
	EncodingArtifact types.HexBytes `json:"encodingArtifact"`
}

// RegistrationResponse returns the slot assigned to a registration.
type RegistrationResponse struct {
	Index uint64 `json:"index"`
}

// CensusState carries the running census commitments.
type CensusState struct {
	KeysCommitment   types.HexBytes `json:"keysCommitment"`
	ValuesCommitment types.HexBytes `json:"valuesCommitment"`
	Participants     uint64         `json:"participants"`
	SetupVersion     uint64         `json:"setupVersion"`
}

// NewProcess is the request to create a new voting process.
type NewProcess struct {
	ChainID uint32         `json:"chainId"`
	Address common.Address `json:"address"`
	Nonce   uint64         `json:"nonce"`
}
