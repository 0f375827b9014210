package service

// Code lengths for the two transfer paths. Both draw from the 36-symbol
// alphabet [A-Z0-9]; 8 chars gives roughly 2.8e12 combinations.
const (
	ClaimCodeLength    = 8
	PropertyCodeLength = 6
)

// CodeGenerator produces transfer codes. Codes must be uniformly distributed
// and not derivable from box identity or time. Uniqueness is not the
// generator's job; the registry enforces it with an atomic check-and-insert,
// and callers retry on collision.
type CodeGenerator interface {
	// NewClaimCode returns a fresh 8-char claim code.
	NewClaimCode() (string, error)

	// NewPropertyCode returns a fresh 6-char property code.
	NewPropertyCode() (string, error)
}
