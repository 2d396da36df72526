package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	qt "github.com/frankban/quicktest"
	"go.vocdoni.io/dvote/db"
	"go.vocdoni.io/dvote/db/metadb"

	"github.com/vocdoni/kzg-sandbox/census"
	"github.com/vocdoni/kzg-sandbox/crypto/bn254"
	"github.com/vocdoni/kzg-sandbox/process"
	"github.com/vocdoni/kzg-sandbox/storage"
	"github.com/vocdoni/kzg-sandbox/types"
	"github.com/vocdoni/kzg-sandbox/util"
)

func newTestServer(t *testing.T) (*httptest.Server, *census.Census) {
	c := qt.New(t)
	database, err := metadb.New(db.TypePebble, t.TempDir())
	c.Assert(err, qt.IsNil)
	stg := storage.New(database)
	cns, err := census.New(stg, nil)
	c.Assert(err, qt.IsNil)

	a := &API{census: cns, processes: process.New(stg, cns)}
	a.initRouter()
	srv := httptest.NewServer(a.Router())
	t.Cleanup(srv.Close)
	return srv, cns
}

func doRequest(c *qt.C, srv *httptest.Server, method, path string, body, out any) int {
	var buf bytes.Buffer
	if body != nil {
		c.Assert(json.NewEncoder(&buf).Encode(body), qt.IsNil)
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	c.Assert(err, qt.IsNil)
	resp, err := http.DefaultClient.Do(req)
	c.Assert(err, qt.IsNil)
	defer func() { c.Assert(resp.Body.Close(), qt.IsNil) }()
	if out != nil && resp.StatusCode == http.StatusOK {
		c.Assert(json.NewDecoder(resp.Body).Decode(out), qt.IsNil)
	}
	return resp.StatusCode
}

func TestPing(t *testing.T) {
	c := qt.New(t)
	srv, _ := newTestServer(t)
	c.Assert(doRequest(c, srv, http.MethodGet, PingEndpoint, nil, nil), qt.Equals, http.StatusOK)
}

func TestSetupEndpoints(t *testing.T) {
	c := qt.New(t)
	srv, cns := newTestServer(t)

	setup := &Setup{}
	c.Assert(doRequest(c, srv, http.MethodGet, SetupEndpoint, nil, setup), qt.Equals, http.StatusOK)
	c.Assert(setup.Version, qt.Equals, uint64(0))
	c.Assert(setup.G1Powers, qt.HasLen, types.MaxDegree+1)
	c.Assert(setup.G2Powers, qt.HasLen, types.MaxDegree+1)

	// a locally generated update proof round-trips through the endpoint
	k := new(big.Int).Mod(new(big.Int).SetBytes(util.RandomBytes(32)), bn254.Order)
	up := cns.CurrentSetup().GenerateUpdateProof(k)
	req := &SetupUpdate{
		G1Powers: make([]types.HexBytes, len(up.G1Powers)),
		G2Powers: make([]types.HexBytes, len(up.G2Powers)),
		Proof:    up.Proof.Marshal(),
	}
	for i := range up.G1Powers {
		req.G1Powers[i] = up.G1Powers[i].Marshal()
		req.G2Powers[i] = up.G2Powers[i].Marshal()
	}
	updated := &Setup{}
	c.Assert(doRequest(c, srv, http.MethodPost, SetupUpdateEndpoint, req, updated), qt.Equals, http.StatusOK)
	c.Assert(updated.Version, qt.Equals, uint64(1))

	// replaying the same (now stale) update is rejected
	c.Assert(doRequest(c, srv, http.MethodPost, SetupUpdateEndpoint, req, nil), qt.Equals, http.StatusBadRequest)
}

func TestSetupUpdateWrongSize(t *testing.T) {
	c := qt.New(t)
	srv, _ := newTestServer(t)

	// oversized arrays are rejected before any point is decoded
	g1 := bn254.G1Generator().Marshal()
	g2 := bn254.G2Generator().Marshal()
	req := &SetupUpdate{
		G1Powers: make([]types.HexBytes, 4096),
		G2Powers: make([]types.HexBytes, 4096),
		Proof:    g1,
	}
	for i := range req.G1Powers {
		req.G1Powers[i] = g1
		req.G2Powers[i] = g2
	}
	c.Assert(doRequest(c, srv, http.MethodPost, SetupUpdateEndpoint, req, nil), qt.Equals, http.StatusBadRequest)

	// as are undersized ones
	req.G1Powers = req.G1Powers[:types.MaxDegree]
	req.G2Powers = req.G2Powers[:types.MaxDegree]
	c.Assert(doRequest(c, srv, http.MethodPost, SetupUpdateEndpoint, req, nil), qt.Equals, http.StatusBadRequest)
}

func TestRegisterEndpoint(t *testing.T) {
	c := qt.New(t)
	srv, cns := newTestServer(t)

	setup := cns.CurrentSetup()
	sk := new(big.Int).Mod(new(big.Int).SetBytes(util.RandomBytes(32)), bn254.Order)
	req := &Registration{
		Address:          common.BytesToAddress(util.RandomBytes(20)),
		Key:              setup.G2Powers[0].ScalarMul(sk).Marshal(),
		EncodedKey:       setup.G2Powers[1].ScalarMul(sk).Marshal(),
		EncodingArtifact: setup.G2Powers[types.MaxDegree].ScalarMul(sk).Marshal(),
	}
	resp := &RegistrationResponse{}
	c.Assert(doRequest(c, srv, http.MethodPost, RegisterEndpoint, req, resp), qt.Equals, http.StatusOK)
	c.Assert(resp.Index, qt.Equals, uint64(1))

	// double registration
	c.Assert(doRequest(c, srv, http.MethodPost, RegisterEndpoint, req, nil), qt.Equals, http.StatusConflict)

	// census state reflects the registration
	state := &CensusState{}
	c.Assert(doRequest(c, srv, http.MethodGet, CensusEndpoint, nil, state), qt.Equals, http.StatusOK)
	c.Assert(state.Participants, qt.Equals, uint64(1))
	c.Assert([]byte(state.KeysCommitment), qt.DeepEquals, []byte(req.EncodedKey))

	// malformed point
	bad := &Registration{
		Address:          common.BytesToAddress(util.RandomBytes(20)),
		Key:              util.RandomBytes(8),
		EncodedKey:       req.EncodedKey,
		EncodingArtifact: req.EncodingArtifact,
	}
	c.Assert(doRequest(c, srv, http.MethodPost, RegisterEndpoint, bad, nil), qt.Equals, http.StatusBadRequest)
}

func TestProcessEndpoints(t *testing.T) {
	c := qt.New(t)
	srv, _ := newTestServer(t)

	req := &NewProcess{
		ChainID: 1,
		Address: common.BytesToAddress(util.RandomBytes(20)),
		Nonce:   7,
	}
	created := &types.Process{}
	c.Assert(doRequest(c, srv, http.MethodPost, ProcessesEndpoint, req, created), qt.Equals, http.StatusOK)

	// fetch it back
	got := &types.Process{}
	path := fmt.Sprintf("/processes/%s", created.ID.String())
	c.Assert(doRequest(c, srv, http.MethodGet, path, nil, got), qt.Equals, http.StatusOK)
	c.Assert(got.KeysCommitment, qt.DeepEquals, created.KeysCommitment)

	// duplicates are rejected
	c.Assert(doRequest(c, srv, http.MethodPost, ProcessesEndpoint, req, nil), qt.Equals, http.StatusConflict)

	// unknown process
	pid := &types.ProcessID{ChainID: 9, Nonce: 9}
	c.Assert(doRequest(c, srv, http.MethodGet, "/processes/"+pid.String(), nil, nil), qt.Equals, http.StatusNotFound)
}
