package types

const (
	// MaxDegree is the highest power of the setup secret present in the
	// structured reference string. The test configuration keeps it small; a
	// production ceremony would use a much larger value.
	MaxDegree = 10
	// DataArraySize is the number of usable coefficient slots in a committed
	// data array. Consistency proofs pair two committed polynomials, so the
	// product degree 2*(DataArraySize-1) must not exceed MaxDegree.
	DataArraySize = MaxDegree/2 + 1
	// HashToCurveMaxAttempts bounds the try-and-increment loop of the
	// hash-to-curve mapping.
	HashToCurveMaxAttempts = 256
)
