// Package utils provides helpers shared by the device runtime and the ingest
// simulator: keyed HMAC hashing, HTTP client construction, id generation
// and HTTP response writing.
package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests for protocol tags.
//
// Each Hasher owns a sync.Pool of hash.Hash instances bound to its key, so
// devices with different keys (e.g. several devices registered in the
// ingest simulator) never share HMAC state.
type Hasher struct {
	key  []byte
	pool sync.Pool
}

// NewHasher creates a Hasher for the given key. The key is copied.
//
// Parameters:
//
//	key - shared secret used for every HMAC operation
//
// Example usage:
//
//	h := utils.NewHasher(device.Key)
//	tag := h.SumHex(body)
func NewHasher(key []byte) *Hasher {
	k := make([]byte, len(key))
	copy(k, key)

	h := &Hasher{key: k}
	h.pool.New = func() any {
		return hmac.New(sha256.New, h.key)
	}
	return h
}

// Sum computes an HMAC-SHA256 digest over data using a pooled hasher.
//
// Behavior:
//   - Retrieves a hash.Hash instance from the pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// SumHex returns the lowercase hex encoding of Sum(data).
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether tagHex equals SumHex(data) byte for byte. The
// comparison is constant-time; uppercase hex does not match.
func (h *Hasher) Verify(data []byte, tagHex string) bool {
	return hmac.Equal([]byte(h.SumHex(data)), []byte(tagHex))
}

// HashHex computes a one-off HMAC-SHA256 over data and returns it hex-encoded.
//
// Unlike [Hasher.Sum], no pool is involved; suitable for tests and one-shot
// tooling.
func HashHex(data []byte, key []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}
