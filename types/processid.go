package types

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ProcessID identifies a voting process. It is composed of:
// - ChainID (4 bytes)
// - Address (20 bytes)
// - Nonce (8 bytes)
type ProcessID struct {
	Address common.Address
	Nonce   uint64
	ChainID uint32
}

// Marshal encodes the ProcessID to its 32 byte representation.
func (p *ProcessID) Marshal() []byte {
	id := make([]byte, 0, 32)
	id = binary.BigEndian.AppendUint32(id, p.ChainID)
	id = append(id, p.Address.Bytes()...)
	id = binary.BigEndian.AppendUint64(id, p.Nonce)
	return id
}

// Unmarshal decodes a 32 byte slice into the ProcessID.
func (p *ProcessID) Unmarshal(data []byte) error {
	if len(data) != 32 {
		return fmt.Errorf("invalid ProcessID length: %d", len(data))
	}
	p.ChainID = binary.BigEndian.Uint32(data[:4])
	p.Address = common.BytesToAddress(data[4:24])
	p.Nonce = binary.BigEndian.Uint64(data[24:32])
	return nil
}

// String returns a human readable representation of the process ID.
func (p *ProcessID) String() string {
	return hex.EncodeToString(p.Marshal())
}
