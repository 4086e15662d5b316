// Package slot fixes the 100-byte stored-entry layout shared by every
// component that touches the session cache's backing slab: the tree index
// (internal/bst), the LRU list (internal/lru), and the cache façade all
// address the same slots through the named offsets declared here, which
// are read and written via the byte-store accessor (internal/store).
//
// Layout (big-endian multibyte fields), exactly 100 bytes:
//
//	offset  length  field
//	0       32      indexed key (MAC of session_id)
//	32      48      master_secret
//	80      2       version
//	82      2       cipher_suite
//	84      4       LRU prev address
//	88      4       LRU next address
//	92      4       tree left-child address
//	96      4       tree right-child address
//
// © 2025 session-cache authors. MIT License.
package slot

import "github.com/voskan/session-cache/internal/store"

// Size is the fixed byte width of one stored entry.
const Size = 100

// Field byte offsets within a slot, relative to the slot's base address.
const (
	OffIndexedKey   = 0
	OffMasterSecret = 32
	OffVersion      = 80
	OffCipherSuite  = 82
	OffLRUPrev      = 84
	OffLRUNext      = 88
	OffTreeLeft     = 92
	OffTreeRight    = 96
)

const (
	IndexedKeyLen   = 32
	MasterSecretLen = 48
)

// NullAddr is the sentinel meaning "no link" for any 32-bit address field.
const NullAddr uint32 = 0xFFFFFFFF

// IndexedKey returns a view of the indexed-key field at addr.
func IndexedKey(buf []byte, addr uint32) []byte {
	return store.Span(buf, addr+OffIndexedKey, IndexedKeyLen)
}

// SetIndexedKey writes the indexed-key field at addr.
func SetIndexedKey(buf []byte, addr uint32, key []byte) {
	store.PutSpan(buf, addr+OffIndexedKey, key)
}

// MasterSecret returns a view of the master_secret field at addr.
func MasterSecret(buf []byte, addr uint32) []byte {
	return store.Span(buf, addr+OffMasterSecret, MasterSecretLen)
}

// SetMasterSecret writes the master_secret field at addr.
func SetMasterSecret(buf []byte, addr uint32, ms []byte) {
	store.PutSpan(buf, addr+OffMasterSecret, ms)
}

// Version reads the version field at addr.
func Version(buf []byte, addr uint32) uint16 {
	return store.Uint16(buf, addr+OffVersion)
}

// SetVersion writes the version field at addr.
func SetVersion(buf []byte, addr uint32, v uint16) {
	store.PutUint16(buf, addr+OffVersion, v)
}

// CipherSuite reads the cipher_suite field at addr.
func CipherSuite(buf []byte, addr uint32) uint16 {
	return store.Uint16(buf, addr+OffCipherSuite)
}

// SetCipherSuite writes the cipher_suite field at addr.
func SetCipherSuite(buf []byte, addr uint32, v uint16) {
	store.PutUint16(buf, addr+OffCipherSuite, v)
}

// LRUPrev reads the LRU prev-address link at addr.
func LRUPrev(buf []byte, addr uint32) uint32 {
	return store.Uint32(buf, addr+OffLRUPrev)
}

// SetLRUPrev writes the LRU prev-address link at addr.
func SetLRUPrev(buf []byte, addr uint32, v uint32) {
	store.PutUint32(buf, addr+OffLRUPrev, v)
}

// LRUNext reads the LRU next-address link at addr.
func LRUNext(buf []byte, addr uint32) uint32 {
	return store.Uint32(buf, addr+OffLRUNext)
}

// SetLRUNext writes the LRU next-address link at addr.
func SetLRUNext(buf []byte, addr uint32, v uint32) {
	store.PutUint32(buf, addr+OffLRUNext, v)
}

// TreeLeft reads the tree left-child address at addr.
func TreeLeft(buf []byte, addr uint32) uint32 {
	return store.Uint32(buf, addr+OffTreeLeft)
}

// SetTreeLeft writes the tree left-child address at addr.
func SetTreeLeft(buf []byte, addr uint32, v uint32) {
	store.PutUint32(buf, addr+OffTreeLeft, v)
}

// TreeRight reads the tree right-child address at addr.
func TreeRight(buf []byte, addr uint32) uint32 {
	return store.Uint32(buf, addr+OffTreeRight)
}

// SetTreeRight writes the tree right-child address at addr.
func SetTreeRight(buf []byte, addr uint32, v uint32) {
	store.PutUint32(buf, addr+OffTreeRight, v)
}

// Init zeroes the link fields of a freshly allocated slot to NullAddr.
// Caller is expected to then write IndexedKey/MasterSecret/Version/CipherSuite.
func Init(buf []byte, addr uint32) {
	SetTreeLeft(buf, addr, NullAddr)
	SetTreeRight(buf, addr, NullAddr)
	SetLRUPrev(buf, addr, NullAddr)
	SetLRUNext(buf, addr, NullAddr)
}
