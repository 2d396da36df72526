// Package bn254 wraps the gnark-crypto BN254 group operations behind the
// small descriptive API used by the commitment and trusted setup packages:
// generators, negation, scalar multiplication, point sums, hash-to-curve and
// single or batched pairing-equation verification.
//
// G1 carries value commitments (balances, signatures) while G2 carries key
// commitments, paired through the bilinear map into GT.
package bn254

import (
	"errors"
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Order is the order of the G1 and G2 groups. All scalars are reduced modulo
// this 254 bit prime before use.
var Order = fr.Modulus()

var (
	// ErrEmptyInput is returned when a sum over zero points is requested.
	ErrEmptyInput = errors.New("empty point sequence")
	// ErrNoValidPoint is returned when hash-to-curve exhausts its attempt
	// bound without finding a valid curve point.
	ErrNoValidPoint = errors.New("no valid curve point found")
	// ErrEmptyBatch is returned when batch verification is invoked with zero
	// equations.
	ErrEmptyBatch = errors.New("empty equation batch")
)

var g1Gen, g2Gen = generators()

func generators() (curve.G1Affine, curve.G2Affine) {
	_, _, g1, g2 := curve.Generators()
	return g1, g2
}

// G1 is an element of the first pairing group. The zero value is the point at
// infinity. Points are immutable: operations return new values and never
// modify the receiver.
type G1 struct {
	inner curve.G1Affine
}

// G1Generator returns the G1 base point.
func G1Generator() G1 {
	return G1{inner: g1Gen}
}

// G1FromBytes deserializes a G1 point from its gnark-crypto encoding.
func G1FromBytes(data []byte) (G1, error) {
	var p curve.G1Affine
	if _, err := p.SetBytes(data); err != nil {
		return G1{}, err
	}
	return G1{inner: p}, nil
}

// Add returns g+o.
func (g G1) Add(o G1) G1 {
	var r curve.G1Affine
	r.Add(&g.inner, &o.inner)
	return G1{inner: r}
}

// Neg returns -g.
func (g G1) Neg() G1 {
	var r curve.G1Affine
	r.Neg(&g.inner)
	return G1{inner: r}
}

// ScalarMul returns k*g, with k reduced modulo the group order.
func (g G1) ScalarMul(k *big.Int) G1 {
	var r curve.G1Affine
	r.ScalarMultiplication(&g.inner, new(big.Int).Mod(k, Order))
	return G1{inner: r}
}

// Equal reports whether g and o are the same point.
func (g G1) Equal(o G1) bool {
	return g.inner.Equal(&o.inner)
}

// IsInfinity reports whether g is the point at infinity.
func (g G1) IsInfinity() bool {
	return g.inner.IsInfinity()
}

// Marshal returns the canonical byte encoding of the point.
func (g G1) Marshal() []byte {
	return g.inner.Marshal()
}

// String returns a human readable representation of the point.
func (g G1) String() string {
	return g.inner.String()
}

// G2 is an element of the second pairing group. The zero value is the point
// at infinity. Points are immutable, as in G1.
type G2 struct {
	inner curve.G2Affine
}

// G2Generator returns the G2 base point.
func G2Generator() G2 {
	return G2{inner: g2Gen}
}

// G2FromBytes deserializes a G2 point from its gnark-crypto encoding.
func G2FromBytes(data []byte) (G2, error) {
	var p curve.G2Affine
	if _, err := p.SetBytes(data); err != nil {
		return G2{}, err
	}
	return G2{inner: p}, nil
}

// Add returns g+o.
func (g G2) Add(o G2) G2 {
	var r curve.G2Affine
	r.Add(&g.inner, &o.inner)
	return G2{inner: r}
}

// Neg returns -g.
func (g G2) Neg() G2 {
	var r curve.G2Affine
	r.Neg(&g.inner)
	return G2{inner: r}
}

// ScalarMul returns k*g, with k reduced modulo the group order.
func (g G2) ScalarMul(k *big.Int) G2 {
	var r curve.G2Affine
	r.ScalarMultiplication(&g.inner, new(big.Int).Mod(k, Order))
	return G2{inner: r}
}

// Equal reports whether g and o are the same point.
func (g G2) Equal(o G2) bool {
	return g.inner.Equal(&o.inner)
}

// IsInfinity reports whether g is the point at infinity.
func (g G2) IsInfinity() bool {
	return g.inner.IsInfinity()
}

// Marshal returns the canonical byte encoding of the point.
func (g G2) Marshal() []byte {
	return g.inner.Marshal()
}

// String returns a human readable representation of the point.
func (g G2) String() string {
	return g.inner.String()
}

// SumG1 adds a non-empty sequence of G1 points.
func SumG1(points []G1) (G1, error) {
	if len(points) == 0 {
		return G1{}, ErrEmptyInput
	}
	sum := points[0]
	for _, p := range points[1:] {
		sum = sum.Add(p)
	}
	return sum, nil
}

// SumG2 adds a non-empty sequence of G2 points.
func SumG2(points []G2) (G2, error) {
	if len(points) == 0 {
		return G2{}, ErrEmptyInput
	}
	sum := points[0]
	for _, p := range points[1:] {
		sum = sum.Add(p)
	}
	return sum, nil
}
