package polycommit

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/kzg-sandbox/crypto/bn254"
	"github.com/vocdoni/kzg-sandbox/crypto/srs"
	"github.com/vocdoni/kzg-sandbox/types"
	"github.com/vocdoni/kzg-sandbox/util"
)

func randomScalar() *big.Int {
	return new(big.Int).Mod(new(big.Int).SetBytes(util.RandomBytes(32)), bn254.Order)
}

// testSetup returns an SRS with a nontrivial secret, so commitment identities
// are not accidentally satisfied by s=1.
func testSetup(c *qt.C) *srs.SRS {
	s := srs.New()
	next, err := s.Update(s.GenerateUpdateProof(randomScalar()))
	c.Assert(err, qt.IsNil)
	return next
}

func TestCommitSingleValue(t *testing.T) {
	c := qt.New(t)
	s := testSetup(c)

	value := big.NewInt(1000)
	com, err := CommitG1(s, value, 1)
	c.Assert(err, qt.IsNil)
	c.Assert(com.Equal(s.G1Powers[1].ScalarMul(value)), qt.IsTrue)

	com2, err := CommitG2(s, value, 3)
	c.Assert(err, qt.IsNil)
	c.Assert(com2.Equal(s.G2Powers[3].ScalarMul(value)), qt.IsTrue)

	_, err = CommitG1(s, value, types.DataArraySize)
	c.Assert(err, qt.Equals, ErrIndexOutOfRange)
	_, err = CommitG2(s, value, -1)
	c.Assert(err, qt.Equals, ErrIndexOutOfRange)
}

func TestCommitVectorHomomorphism(t *testing.T) {
	c := qt.New(t)
	s := testSetup(c)

	x := make([]*big.Int, types.DataArraySize)
	y := make([]*big.Int, types.DataArraySize)
	sum := make([]*big.Int, types.DataArraySize)
	for i := range x {
		x[i] = randomScalar()
		y[i] = randomScalar()
		sum[i] = new(big.Int).Add(x[i], y[i])
	}

	comX, err := CommitVectorG1(s, x)
	c.Assert(err, qt.IsNil)
	comY, err := CommitVectorG1(s, y)
	c.Assert(err, qt.IsNil)
	comSum, err := CommitVectorG1(s, sum)
	c.Assert(err, qt.IsNil)
	c.Assert(comX.Add(comY).Equal(comSum), qt.IsTrue)

	// scaling the commitment commits to the scaled array
	k := big.NewInt(37)
	scaled := make([]*big.Int, len(x))
	for i := range x {
		scaled[i] = new(big.Int).Mul(x[i], k)
	}
	comScaled, err := CommitVectorG1(s, scaled)
	c.Assert(err, qt.IsNil)
	c.Assert(comX.ScalarMul(k).Equal(comScaled), qt.IsTrue)

	// same in G2
	comX2, err := CommitVectorG2(s, x)
	c.Assert(err, qt.IsNil)
	comY2, err := CommitVectorG2(s, y)
	c.Assert(err, qt.IsNil)
	comSum2, err := CommitVectorG2(s, sum)
	c.Assert(err, qt.IsNil)
	c.Assert(comX2.Add(comY2).Equal(comSum2), qt.IsTrue)

	_, err = CommitVectorG1(s, nil)
	c.Assert(err, qt.Equals, bn254.ErrEmptyInput)
	tooLong := make([]*big.Int, types.DataArraySize+1)
	for i := range tooLong {
		tooLong[i] = big.NewInt(1)
	}
	_, err = CommitVectorG1(s, tooLong)
	c.Assert(err, qt.Equals, ErrIndexOutOfRange)
}

func TestShiftEquation(t *testing.T) {
	c := qt.New(t)
	s := testSetup(c)

	// right commits to left's array shifted up by delta
	value := randomScalar()
	left := s.G2Powers[2].ScalarMul(value)
	right := s.G2Powers[5].ScalarMul(value)

	eq, err := ShiftEquation(s, left, right, 3)
	c.Assert(err, qt.IsNil)
	ok, err := eq.Verify()
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)

	// wrong shift amount does not verify
	eq, err = ShiftEquation(s, left, right, 2)
	c.Assert(err, qt.IsNil)
	ok, err = eq.Verify()
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)

	_, err = ShiftEquation(s, left, right, types.MaxDegree+1)
	c.Assert(err, qt.Equals, ErrShiftTooLarge)
}

func TestVerifySingleValue(t *testing.T) {
	c := qt.New(t)
	s := testSetup(c)

	value := randomScalar()
	index := 4
	first := s.G2Powers[0].ScalarMul(value)
	com := s.G2Powers[index].ScalarMul(value)
	last := s.G2Powers[types.MaxDegree].ScalarMul(value)

	ok, err := VerifySingleValue(s, first, com, last, index)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)

	// artifacts derived for a different index must not verify
	ok, err = VerifySingleValue(s, first, com, last, index-1)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)

	// a commitment with an extra hidden coefficient must not verify
	withExtra := com.Add(s.G2Powers[1].ScalarMul(big.NewInt(1)))
	ok, err = VerifySingleValue(s, first, withExtra, last, index)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)

	_, err = VerifySingleValue(s, first, com, last, types.DataArraySize)
	c.Assert(err, qt.Equals, ErrIndexOutOfRange)
}
