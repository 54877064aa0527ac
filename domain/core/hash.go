package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// ComputeSequenceFingerprint produces a deterministic fingerprint for a
// generated sequence from its generation parameters. Two reports computed
// from the same parameters share a fingerprint.
func ComputeSequenceFingerprint(length, bins, resolution int, lags []int) Hash {
	data := fmt.Sprintf("n=%d|bins=%d|res=%d|lags=%v", length, bins, resolution, lags)
	return NewHash([]byte(data))
}
