package bn254

import (
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/vocdoni/kzg-sandbox/types"
)

// bCoeff is the constant term of the BN254 curve equation y^2 = x^3 + 3.
var bCoeff fp.Element

func init() {
	bCoeff.SetUint64(3)
}

// HashToG1 maps an arbitrary message to a pseudorandom G1 point by
// try-and-increment: each attempt hashes the message together with a counter
// byte into a candidate x coordinate and succeeds when x^3+3 is a quadratic
// residue. About half of the attempts succeed, so the bound of
// types.HashToCurveMaxAttempts deterministic attempts is unreachable for any
// practical message; if it is ever hit, ErrNoValidPoint is returned.
func HashToG1(msg []byte) (G1, error) {
	for i := 0; i < types.HashToCurveMaxAttempts; i++ {
		digest := ethcrypto.Keccak256(msg, []byte{byte(i)})

		var x, y, y2 fp.Element
		x.SetBytes(digest)
		y2.Square(&x)
		y2.Mul(&y2, &x)
		y2.Add(&y2, &bCoeff)
		if y.Sqrt(&y2) == nil {
			// x^3+3 is not a square, try the next counter
			continue
		}
		var p curve.G1Affine
		p.X, p.Y = x, y
		return G1{inner: p}, nil
	}
	return G1{}, ErrNoValidPoint
}
