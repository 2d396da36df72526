package types

import (
	"encoding/json"
	"time"
)

// Process represents a voting round. At creation time it snapshots the census
// commitments, so registrations performed after the snapshot do not affect the
// round.
//
// Note that deriving the aggregate public key of an arbitrary subset of the
// registered voters from the keys commitment requires cooperation from the
// excluded voters. This is a known limitation of the underlying protocol, not
// addressed here.
type Process struct {
	ID               HexBytes  `json:"processId"        cbor:"0,keyasint,omitempty"`
	KeysCommitment   HexBytes  `json:"keysCommitment"   cbor:"1,keyasint,omitempty"`
	ValuesCommitment HexBytes  `json:"valuesCommitment" cbor:"2,keyasint,omitempty"`
	Participants     uint64    `json:"participants"     cbor:"3,keyasint,omitempty"`
	SetupVersion     uint64    `json:"setupVersion"     cbor:"4,keyasint"`
	StartTime        time.Time `json:"startTime"        cbor:"5,keyasint,omitempty"`
}

func (p *Process) String() string {
	data, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return string(data)
}
