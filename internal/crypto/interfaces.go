package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher produces and verifies one-way salted password digests.
// Implementations embed the salt in the digest, so the same plaintext yields
// a different digest on every Hash call.
type PasswordHasher interface {
	// Hash derives a salted, computationally expensive digest from the
	// plaintext password. The returned string never contains the plaintext
	// or any reversible encoding of it.
	Hash(password string) (string, error)

	// Verify reports whether password matches the plaintext that produced
	// digest. A malformed digest yields false, never an error or panic.
	Verify(digest, password string) bool
}
