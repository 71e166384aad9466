package ports

// PasswordHasher derives and checks one-way password digests.
type PasswordHasher interface {
	// Hash returns a salted digest of plaintext. Two calls on the same
	// input yield different digests, each embedding its own salt.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A mismatch is not
	// an error, it is simply false.
	Verify(plaintext, digest string) bool
}
