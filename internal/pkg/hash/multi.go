package hash

// Multi hashes with a primary algorithm and still verifies digests produced
// by older ones. NeedsRehash reports true for anything not made by the
// primary with its current parameters, so callers can upgrade on login.
type Multi struct {
	primary Password
	legacy  []Password
}

// NewMulti returns a Multi that writes with primary and also accepts legacy.
func NewMulti(primary Password, legacy ...Password) *Multi {
	return &Multi{primary: primary, legacy: legacy}
}

// Hash uses the primary algorithm.
func (m *Multi) Hash(str string) ([]byte, error) {
	return m.primary.Hash(str)
}

// Verify tries the primary first, then every legacy algorithm.
func (m *Multi) Verify(hashed, str string) bool {
	if m.primary.Verify(hashed, str) {
		return true
	}
	for _, h := range m.legacy {
		if h.Verify(hashed, str) {
			return true
		}
	}
	return false
}

// NeedsRehash delegates to the primary.
func (m *Multi) NeedsRehash(hashed string) bool {
	return m.primary.NeedsRehash(hashed)
}
