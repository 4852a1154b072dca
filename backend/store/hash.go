package store

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher turns a plaintext password into the digest stored in the user
// document. It exists so the digest scheme can be swapped without
// touching the store contract.
type Hasher interface {
	Hash(password string) string
}

// SHA256Hasher is a single unsalted SHA-256 digest, hex encoded.
// Pre-existing documents were written with exactly this scheme, so any
// change here locks every existing account out.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
