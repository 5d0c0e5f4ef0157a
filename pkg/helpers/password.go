package helpers

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns plaintext passwords into bcrypt verifiers.
//
// The plaintext is first condensed with SHA-256 and base64 encoded (44 bytes)
// so that bcrypt's 72-byte input cap never truncates long passwords. Stored
// verifiers depend on this exact pre-hash; changing it needs a new verifier
// format.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the given bcrypt cost. Out of range
// costs fall back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func prehash(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// Hash hashes the plain text password
func (h *PasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(prehash(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches the stored verifier. A malformed
// verifier is just a mismatch.
func (h *PasswordHasher) Verify(plain, verifier string) bool {
	return bcrypt.CompareHashAndPassword([]byte(verifier), prehash(plain)) == nil
}
