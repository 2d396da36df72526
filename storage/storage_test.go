package storage

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	qt "github.com/frankban/quicktest"
	"go.vocdoni.io/dvote/db"
	"go.vocdoni.io/dvote/db/metadb"

	"github.com/vocdoni/kzg-sandbox/crypto/srs"
	"github.com/vocdoni/kzg-sandbox/types"
	"github.com/vocdoni/kzg-sandbox/util"
)

func newTestStorage(t *testing.T) *Storage {
	database, err := metadb.New(db.TypePebble, t.TempDir())
	qt.Assert(t, err, qt.IsNil)
	st := New(database)
	t.Cleanup(st.Close)
	return st
}

func TestSetup(t *testing.T) {
	c := qt.New(t)
	st := newTestStorage(t)

	_, err := st.LatestSetup()
	c.Assert(err, qt.Equals, ErrNotFound)

	initial := srs.New()
	c.Assert(st.SetSetup(initial), qt.IsNil)

	updated, err := initial.Update(initial.GenerateUpdateProof(big.NewInt(123456789)))
	c.Assert(err, qt.IsNil)
	c.Assert(st.SetSetup(updated), qt.IsNil)

	latest, err := st.LatestSetup()
	c.Assert(err, qt.IsNil)
	c.Assert(latest.Version, qt.Equals, uint64(1))
	for i := range latest.G1Powers {
		c.Assert(latest.G1Powers[i].Equal(updated.G1Powers[i]), qt.IsTrue)
		c.Assert(latest.G2Powers[i].Equal(updated.G2Powers[i]), qt.IsTrue)
	}

	// older versions stay addressable
	v0, err := st.Setup(0)
	c.Assert(err, qt.IsNil)
	c.Assert(v0.Version, qt.Equals, uint64(0))

	_, err = st.Setup(7)
	c.Assert(err, qt.Equals, ErrNotFound)
}

func TestRegistrationAndState(t *testing.T) {
	c := qt.New(t)
	st := newTestStorage(t)

	addr := common.BytesToAddress(util.RandomBytes(20))
	_, err := st.Registration(addr)
	c.Assert(err, qt.Equals, ErrNotFound)

	reg := &Registration{
		Address:    addr,
		Index:      1,
		Key:        util.RandomBytes(128),
		EncodedKey: util.RandomBytes(128),
		Value:      big.NewInt(1000).Bytes(),
	}
	state := &CensusState{
		KeysCommitment:   util.RandomBytes(128),
		ValuesCommitment: util.RandomBytes(64),
		NextIndex:        2,
		SetupVersion:     1,
	}
	c.Assert(st.SetRegistrationAndState(reg, state), qt.IsNil)

	gotReg, err := st.Registration(addr)
	c.Assert(err, qt.IsNil)
	c.Assert(gotReg, qt.DeepEquals, reg)

	gotState, err := st.CensusState()
	c.Assert(err, qt.IsNil)
	c.Assert(gotState, qt.DeepEquals, state)

	addrs, err := st.ListRegistrations()
	c.Assert(err, qt.IsNil)
	c.Assert(addrs, qt.DeepEquals, []common.Address{addr})
}

func TestProcess(t *testing.T) {
	c := qt.New(t)
	st := newTestStorage(t)

	pid := &types.ProcessID{
		Address: common.BytesToAddress(util.RandomBytes(20)),
		Nonce:   42,
		ChainID: 1,
	}

	_, err := st.Process(pid)
	c.Assert(err, qt.Equals, ErrNotFound)

	p := &types.Process{
		ID:               pid.Marshal(),
		KeysCommitment:   util.RandomBytes(128),
		ValuesCommitment: util.RandomBytes(64),
		Participants:     3,
		SetupVersion:     2,
	}
	c.Assert(st.SetProcess(p), qt.IsNil)

	got, err := st.Process(pid)
	c.Assert(err, qt.IsNil)
	c.Assert(got.ID, qt.DeepEquals, p.ID)
	c.Assert(got.KeysCommitment, qt.DeepEquals, p.KeysCommitment)
	c.Assert(got.Participants, qt.Equals, p.Participants)

	pids, err := st.ListProcesses()
	c.Assert(err, qt.IsNil)
	c.Assert(pids, qt.HasLen, 1)
	c.Assert(pids[0], qt.DeepEquals, pid.Marshal())
}
