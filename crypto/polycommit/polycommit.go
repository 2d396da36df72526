// Package polycommit builds and verifies Kate style polynomial commitments
// over the structured reference string: a coefficient array is represented by
// a single group element (the polynomial evaluated at the setup secret), and
// pairing identities prove claims about the coefficients without revealing
// them.
package polycommit

import (
	"errors"
	"math/big"

	"github.com/vocdoni/kzg-sandbox/crypto/bn254"
	"github.com/vocdoni/kzg-sandbox/crypto/srs"
	"github.com/vocdoni/kzg-sandbox/types"
)

var (
	// ErrIndexOutOfRange is returned when a commitment targets a coefficient
	// slot at or beyond DataArraySize. Rejected before any group operation.
	ErrIndexOutOfRange = errors.New("coefficient index out of range")
	// ErrShiftTooLarge is returned when a shift equation is requested for a
	// delta larger than the SRS degree.
	ErrShiftTooLarge = errors.New("shift amount exceeds maximum degree")
)

// CommitG1 commits to the coefficient array that holds value at the given
// index and zero everywhere else, in G1: value*S1[index].
func CommitG1(s *srs.SRS, value *big.Int, index int) (bn254.G1, error) {
	if index < 0 || index >= types.DataArraySize {
		return bn254.G1{}, ErrIndexOutOfRange
	}
	return s.G1Powers[index].ScalarMul(value), nil
}

// CommitG2 commits to the coefficient array that holds value at the given
// index and zero everywhere else, in G2: value*S2[index].
func CommitG2(s *srs.SRS, value *big.Int, index int) (bn254.G2, error) {
	if index < 0 || index >= types.DataArraySize {
		return bn254.G2{}, ErrIndexOutOfRange
	}
	return s.G2Powers[index].ScalarMul(value), nil
}

// CommitVectorG1 commits to a full coefficient array in G1. The array length
// is bounded by DataArraySize. Commitment arithmetic mirrors coefficient
// arithmetic: the sum of two commitments commits to the elementwise sum of
// the arrays.
func CommitVectorG1(s *srs.SRS, coeffs []*big.Int) (bn254.G1, error) {
	if len(coeffs) == 0 {
		return bn254.G1{}, bn254.ErrEmptyInput
	}
	if len(coeffs) > types.DataArraySize {
		return bn254.G1{}, ErrIndexOutOfRange
	}
	terms := make([]bn254.G1, len(coeffs))
	for i, c := range coeffs {
		terms[i] = s.G1Powers[i].ScalarMul(c)
	}
	return bn254.SumG1(terms)
}

// CommitVectorG2 commits to a full coefficient array in G2.
func CommitVectorG2(s *srs.SRS, coeffs []*big.Int) (bn254.G2, error) {
	if len(coeffs) == 0 {
		return bn254.G2{}, bn254.ErrEmptyInput
	}
	if len(coeffs) > types.DataArraySize {
		return bn254.G2{}, ErrIndexOutOfRange
	}
	terms := make([]bn254.G2, len(coeffs))
	for i, c := range coeffs {
		terms[i] = s.G2Powers[i].ScalarMul(c)
	}
	return bn254.SumG2(terms)
}

// ShiftEquation builds the pairing equation
//
//	1 = e(S1[delta], left) * e(-G1, right)
//
// which holds iff the coefficient array behind right equals the array behind
// left shifted up by delta positions, with nothing falling off the top:
// pairing left against S1[delta] multiplies its polynomial by s^delta, and
// the result must land exactly on right.
func ShiftEquation(s *srs.SRS, left, right bn254.G2, delta int) (bn254.Equation, error) {
	if delta < 0 || delta > s.MaxDegree() {
		return bn254.Equation{}, ErrShiftTooLarge
	}
	return bn254.Equation{
		A: s.G1Powers[delta],
		B: left,
		C: bn254.G1Generator().Neg(),
		D: right,
	}, nil
}

// SingleValueEquations builds the two shift equations that together prove
// valueCommitment has exactly one nonzero coefficient, located at index.
// first must commit to the same value at position 0 and last to the same
// value at position MaxDegree. Shifting first by index must reproduce
// valueCommitment (nothing nonzero before index), and shifting first all the
// way by MaxDegree must reproduce last (nothing nonzero after index: any
// additional term would overflow the SRS degree and break the identity).
func SingleValueEquations(s *srs.SRS, first, valueCommitment, last bn254.G2, index int) ([]bn254.Equation, error) {
	if index < 0 || index >= types.DataArraySize {
		return nil, ErrIndexOutOfRange
	}
	atIndex, err := ShiftEquation(s, first, valueCommitment, index)
	if err != nil {
		return nil, err
	}
	atMax, err := ShiftEquation(s, first, last, s.MaxDegree())
	if err != nil {
		return nil, err
	}
	return []bn254.Equation{atIndex, atMax}, nil
}

// VerifySingleValue checks the single nonzero coefficient claim with one
// batched pairing computation.
func VerifySingleValue(s *srs.SRS, first, valueCommitment, last bn254.G2, index int) (bool, error) {
	eqs, err := SingleValueEquations(s, first, valueCommitment, last, index)
	if err != nil {
		return false, err
	}
	return bn254.VerifyBatch(eqs)
}
