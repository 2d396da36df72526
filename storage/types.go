package storage

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/vocdoni/kzg-sandbox/types"
)

// SetupArtifact is the stored form of one SRS version, with every group
// element in its canonical byte encoding.
type SetupArtifact struct {
	Version  uint64           `json:"version"  cbor:"0,keyasint"`
	G1Powers []types.HexBytes `json:"g1Powers" cbor:"1,keyasint"`
	G2Powers []types.HexBytes `json:"g2Powers" cbor:"2,keyasint"`
}

// Registration maps a voter address to its assigned coefficient slot,
// together with the artifacts it registered with.
type Registration struct {
	Address    common.Address `json:"address"    cbor:"0,keyasint"`
	Index      uint64         `json:"index"      cbor:"1,keyasint"`
	Key        types.HexBytes `json:"key"        cbor:"2,keyasint"`
	EncodedKey types.HexBytes `json:"encodedKey" cbor:"3,keyasint"`
	Value      types.HexBytes `json:"value"      cbor:"4,keyasint,omitempty"`
}

// CensusState is the stored form of the running census: the two aggregate
// commitments, the next free slot and the setup version they were built
// against.
type CensusState struct {
	KeysCommitment   types.HexBytes `json:"keysCommitment"   cbor:"0,keyasint"`
	ValuesCommitment types.HexBytes `json:"valuesCommitment" cbor:"1,keyasint"`
	NextIndex        uint64         `json:"nextIndex"        cbor:"2,keyasint"`
	SetupVersion     uint64         `json:"setupVersion"     cbor:"3,keyasint"`
}
