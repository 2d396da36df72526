package bn254

// VerifySignature reports whether sig is a valid BLS signature of msg under
// the public key pk. Signatures live in G1 and public keys in G2, matching
// the asymmetric use of the two groups across the scheme. The check is the
// pairing equation 1 = e(H(msg), pk) * e(-sig, G2).
func VerifySignature(sig G1, pk G2, msg []byte) (bool, error) {
	hm, err := HashToG1(msg)
	if err != nil {
		return false, err
	}
	eq := Equation{A: hm, B: pk, C: sig.Neg(), D: G2Generator()}
	return eq.Verify()
}
