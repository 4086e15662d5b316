// Package keymask implements the DoS-resistant key transform used to index
// the session cache's tree: the on-wire session_id is replaced by a keyed
// MAC of itself, so that an attacker who cannot see the cache's secret key
// cannot choose session_ids that skew the tree's shape.
//
// The construction is HMAC over a hash selected by the server context,
// truncated or extended to exactly 32 bytes as spec'd. Determinism and
// keyed unpredictability are what matter; this package does not claim the
// result is itself suitable as a general-purpose MAC output.
//
// © 2025 session-cache authors. MIT License.
package keymask

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // spec-mandated hash option, see Hash const below
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// Hash identifies the hash primitive underlying the keyed MAC. The spec
// (§4.2) names SHA-256, SHA-384, and SHA-1 as the expected range.
type Hash uint8

const (
	SHA256 Hash = iota
	SHA384
	SHA1
)

// KeyLen is the width of the masker's secret key and of its output.
const KeyLen = 32

func (h Hash) newFunc() func() hash.Hash {
	switch h {
	case SHA384:
		return sha512.New384
	case SHA1:
		return sha1.New
	default:
		return sha256.New
	}
}

// Masker derives indexed keys from session_ids using a fixed secret and
// hash algorithm, both supplied once at construction and never reassigned
// for the lifetime of the cache (spec invariant 5).
type Masker struct {
	key     [KeyLen]byte
	newHash func() hash.Hash
}

// New constructs a Masker from a 32-byte secret key and a chosen hash.
func New(key [KeyLen]byte, h Hash) *Masker {
	return &Masker{key: key, newHash: h.newFunc()}
}

// Mask transforms a 32-byte session_id into its 32-byte indexed key via
// HMAC(hash, key, sessionID). If the underlying hash's native output is
// wider than 32 bytes (SHA-384), the result is truncated; SHA-256 fills
// the 32 bytes exactly; if narrower (SHA-1), the full MAC output occupies
// the first bytes and the rest of the 32-byte output is zero.
func (m *Masker) Mask(sessionID []byte) [KeyLen]byte {
	mac := hmac.New(m.newHash, m.key[:])
	mac.Write(sessionID)
	sum := mac.Sum(nil)

	var out [KeyLen]byte
	n := copy(out[:], sum)
	_ = n
	return out
}
