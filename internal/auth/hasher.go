package auth

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters (OWASP-recommended) and salt size.
const (
	argon2Time    = 1         // iterations
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4         // parallelism
	argon2KeyLen  = 32        // digest length in bytes

	// SaltLength is the fixed per-account salt size in bytes
	SaltLength = 16
)

// PasswordHasher provides salted password hashing primitives.
//
// The salt lives outside the digest: it is generated once at
// registration, stored on the account, and fed back in verbatim for
// every verification.
type PasswordHasher interface {
	// GenerateSalt produces a fresh random salt of SaltLength bytes
	GenerateSalt() ([]byte, error)

	// Hash derives the password digest for the given salt
	Hash(salt []byte, password string) []byte

	// Compare reports whether two digests are equal, in constant time
	Compare(a, b []byte) bool
}

// Argon2idHasher implements PasswordHasher using argon2id, a memory-hard
// KDF suited to password storage against offline brute force.
type Argon2idHasher struct {
	entropy io.Reader
}

// NewArgon2idHasher creates a hasher seeded from crypto/rand
func NewArgon2idHasher() *Argon2idHasher {
	return NewArgon2idHasherWithEntropy(rand.Reader)
}

// NewArgon2idHasherWithEntropy creates a hasher with the given entropy
// source (for testing)
func NewArgon2idHasherWithEntropy(entropy io.Reader) *Argon2idHasher {
	return &Argon2idHasher{entropy: entropy}
}

// Ensure Argon2idHasher implements PasswordHasher
var _ PasswordHasher = (*Argon2idHasher)(nil)

// GenerateSalt produces a fresh random salt
func (h *Argon2idHasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(h.entropy, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	return salt, nil
}

// Hash derives the argon2id digest of the password under the salt
func (h *Argon2idHasher) Hash(salt []byte, password string) []byte {
	return argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
}

// Compare checks digest equality without short-circuiting on the first
// mismatching byte, so timing reveals nothing about where hashes differ.
func (h *Argon2idHasher) Compare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
