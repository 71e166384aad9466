package service

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is deliberately expensive to slow offline brute force
// against a stolen credential store. Tunable per deployment via config.
const DefaultBcryptCost = 12

// BcryptHasher implements ports.PasswordHasher on top of bcrypt, which
// embeds its own random salt and cost factor in every digest.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify recomputes with the salt embedded in digest and compares in
// constant time.
func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
