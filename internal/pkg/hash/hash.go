package hash

// Hash produces and verifies digests of plaintext secrets.
type Hash interface {
	// Hash returns the encoded digest of str.
	Hash(str string) ([]byte, error)
	// Verify reports whether str matches the encoded digest. It returns false
	// for malformed digests.
	Verify(hashed, str string) bool
}

// Password is a Hash for user passwords that can tell when a stored digest
// was produced with outdated parameters.
type Password interface {
	Hash
	// NeedsRehash reports whether hashed should be replaced by a fresh digest
	// made with the current parameters.
	NeedsRehash(hashed string) bool
}
