package bn254

import (
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/blake2b"
)

// Equation is the pairing assertion 1 = e(A,B)*e(C,D). Every consistency
// check in the scheme (setup updates, registration proofs, signatures)
// reduces to one or more of these.
type Equation struct {
	A G1
	B G2
	C G1
	D G2
}

// Verify checks the equation with a single multi-pairing computation.
func (e Equation) Verify() (bool, error) {
	return curve.PairingCheck(
		[]curve.G1Affine{e.A.inner, e.C.inner},
		[]curve.G2Affine{e.B.inner, e.D.inner},
	)
}

// randomizer derives the batching coefficient of an equation by hashing the
// canonical serialization of its four points. The coefficient must be
// unpredictable to an adversary choosing the equations, but it is not a
// secret: deriving it from the equation content itself prevents crafting
// equations that cancel each other once combined.
func (e Equation) randomizer() *big.Int {
	buf := make([]byte, 0, 12*fr.Bytes)
	buf = append(buf, e.A.Marshal()...)
	buf = append(buf, e.B.Marshal()...)
	buf = append(buf, e.C.Marshal()...)
	buf = append(buf, e.D.Marshal()...)
	digest := blake2b.Sum512(buf)

	var r fr.Element
	r.SetBytes(digest[:])
	if r.IsZero() {
		r.SetOne()
	}
	return r.BigInt(new(big.Int))
}

// VerifyBatch checks a set of pairing equations with a single multi-pairing
// computation. Each equation after the first has its G1 members scaled by a
// content-derived pseudorandom coefficient, so a random linear combination of
// true statements stays true while a forged equation would have to predict
// its own coefficient. The first equation keeps coefficient one: this keeps
// the combination affinely nontrivial and rules out the all-zero degenerate
// combination.
func VerifyBatch(eqs []Equation) (bool, error) {
	if len(eqs) == 0 {
		return false, ErrEmptyBatch
	}
	g1Points := make([]curve.G1Affine, 0, 2*len(eqs))
	g2Points := make([]curve.G2Affine, 0, 2*len(eqs))
	for i, eq := range eqs {
		a, c := eq.A, eq.C
		if i > 0 {
			r := eq.randomizer()
			a = a.ScalarMul(r)
			c = c.ScalarMul(r)
		}
		g1Points = append(g1Points, a.inner, c.inner)
		g2Points = append(g2Points, eq.B.inner, eq.D.inner)
	}
	return curve.PairingCheck(g1Points, g2Points)
}
