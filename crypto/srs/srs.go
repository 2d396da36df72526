// Package srs implements the updatable structured reference string of the
// commitment scheme: powers of a secret scalar s in both pairing groups,
// together with the update protocol that lets any contributor multiply the
// secret by fresh entropy and prove the update consistent without revealing
// either the old or the new secret.
package srs

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/vocdoni/kzg-sandbox/crypto/bn254"
	"github.com/vocdoni/kzg-sandbox/types"
)

var (
	// ErrInvalidSize is returned when an update carries arrays of the wrong
	// length. Rejected before any cryptographic check.
	ErrInvalidSize = errors.New("update arrays must have MaxDegree+1 entries")
	// ErrInvalidDegreeZeroTerm is returned when an update alters the degree
	// zero entry of either array. That term carries no secret dependence and
	// must always equal the group generator.
	ErrInvalidDegreeZeroTerm = errors.New("degree zero term must equal the generator")
	// ErrInvalidUpdateProof is returned when the batched pairing check over
	// the update equations fails. The stored SRS is left untouched.
	ErrInvalidUpdateProof = errors.New("invalid setup update proof")
)

// SRS is one version of the structured reference string: G1Powers[i] = s^i*G1
// and G2Powers[i] = s^i*G2 for the current setup secret s. A version is
// immutable once built; Update validates a candidate and returns the next
// version, which callers swap in atomically.
type SRS struct {
	Version  uint64
	G1Powers []bn254.G1
	G2Powers []bn254.G2
}

// New returns the initial SRS, with implicit secret s=1: every entry of both
// arrays equals the respective generator.
func New() *SRS {
	s := &SRS{
		G1Powers: make([]bn254.G1, types.MaxDegree+1),
		G2Powers: make([]bn254.G2, types.MaxDegree+1),
	}
	for i := range s.G1Powers {
		s.G1Powers[i] = bn254.G1Generator()
		s.G2Powers[i] = bn254.G2Generator()
	}
	return s
}

// MaxDegree returns the highest power of the secret present in the SRS.
func (s *SRS) MaxDegree() int {
	return len(s.G1Powers) - 1
}

// UpdateProof carries a candidate next SRS together with the proof point
// k*G1 that lets a verifier confirm the update used the claimed multiplier
// without learning k.
type UpdateProof struct {
	G1Powers []bn254.G1
	G2Powers []bn254.G2
	Proof    bn254.G1
}

// GenerateUpdateProof scales every SRS entry of degree i by k^i and returns
// the resulting candidate arrays with the proof point k*G1.
//
// This is a purely local computation and k is the contributor's secret: it
// must never run on shared or observed infrastructure, and in particular must
// never be part of a state-changing transaction, since whoever executes it
// learns k.
func (s *SRS) GenerateUpdateProof(k *big.Int) *UpdateProof {
	up := &UpdateProof{
		G1Powers: make([]bn254.G1, len(s.G1Powers)),
		G2Powers: make([]bn254.G2, len(s.G2Powers)),
		Proof:    bn254.G1Generator().ScalarMul(k),
	}
	kPow := big.NewInt(1)
	for i := range s.G1Powers {
		up.G1Powers[i] = s.G1Powers[i].ScalarMul(kPow)
		up.G2Powers[i] = s.G2Powers[i].ScalarMul(kPow)
		kPow = kPow.Mul(kPow, k)
		kPow = kPow.Mod(kPow, bn254.Order)
	}
	return up
}

// Update validates a candidate SRS against the current version and, if every
// check passes, returns the next version. The receiver is never modified, so
// a failed update cannot leave a partially adopted setup behind.
//
// Validation builds 2*MaxDegree pairing equations, all submitted to the
// batched verifier in one shot:
//
//  1. e(proof, S2[1]) * e(-G1, S2'[1]) = 1 bootstraps the chain: it proves
//     the new first degree term equals the old secret scaled by the freshly
//     committed k, so S2'[1] = (k*s)*G2.
//  2. For each degree d in 1..MaxDegree, e(S1'[d-1], S2'[1]) * e(-S1'[d], G2)
//     = 1 chains consistency through G1: S1'[d] = (k*s)*S1'[d-1].
//  3. For each degree d in 2..MaxDegree, e(S1'[d], G2) * e(-G1, S2'[d]) = 1
//     carries the chained G1 powers over to G2, since chaining inside G2
//     alone would require revealing more of the secret.
//
// The degree zero terms are checked by plain equality against the
// generators.
//
// Chaining each degree from the previous one means only the first degree
// relation needs the explicit proof point; the remaining degrees follow by
// induction through the pairing structure.
func (s *SRS) Update(up *UpdateProof) (*SRS, error) {
	if len(up.G1Powers) != len(s.G1Powers) || len(up.G2Powers) != len(s.G2Powers) {
		return nil, ErrInvalidSize
	}
	if !up.G1Powers[0].Equal(bn254.G1Generator()) || !up.G2Powers[0].Equal(bn254.G2Generator()) {
		return nil, ErrInvalidDegreeZeroTerm
	}

	negG1 := bn254.G1Generator().Neg()
	eqs := make([]bn254.Equation, 0, 2*s.MaxDegree())
	eqs = append(eqs, bn254.Equation{
		A: up.Proof,
		B: s.G2Powers[1],
		C: negG1,
		D: up.G2Powers[1],
	})
	for d := 1; d <= s.MaxDegree(); d++ {
		eqs = append(eqs, bn254.Equation{
			A: up.G1Powers[d-1],
			B: up.G2Powers[1],
			C: up.G1Powers[d].Neg(),
			D: bn254.G2Generator(),
		})
	}
	for d := 2; d <= s.MaxDegree(); d++ {
		eqs = append(eqs, bn254.Equation{
			A: up.G1Powers[d],
			B: bn254.G2Generator(),
			C: negG1,
			D: up.G2Powers[d],
		})
	}

	ok, err := bn254.VerifyBatch(eqs)
	if err != nil {
		return nil, fmt.Errorf("verify update equations: %w", err)
	}
	if !ok {
		return nil, ErrInvalidUpdateProof
	}

	next := &SRS{
		Version:  s.Version + 1,
		G1Powers: make([]bn254.G1, len(up.G1Powers)),
		G2Powers: make([]bn254.G2, len(up.G2Powers)),
	}
	copy(next.G1Powers, up.G1Powers)
	copy(next.G2Powers, up.G2Powers)
	return next, nil
}
