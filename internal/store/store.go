// Package store provides bounds-checked big-endian field access over a
// flat byte slab. It makes no alignment assumptions: every read or write
// goes through encoding/binary rather than a native-width pointer cast, so
// the backing region can be any caller-supplied []byte, at any offset.
//
// Bounds checking is the caller's responsibility at the façade layer (see
// the session cache's Save/Load); this package only guards against slicing
// past the end of buf, which Go already does for us — the functions here
// exist to centralise the big-endian convention and the span-copy idiom so
// the rest of the module never reaches for encoding/binary directly.
//
// © 2025 session-cache authors. MIT License.
package store

import "encoding/binary"

// Uint16 reads a big-endian uint16 at off.
func Uint16(buf []byte, off uint32) uint16 {
	return binary.BigEndian.Uint16(buf[off : off+2])
}

// PutUint16 writes v as big-endian at off.
func PutUint16(buf []byte, off uint32, v uint16) {
	binary.BigEndian.PutUint16(buf[off:off+2], v)
}

// Uint32 reads a big-endian uint32 at off.
func Uint32(buf []byte, off uint32) uint32 {
	return binary.BigEndian.Uint32(buf[off : off+4])
}

// PutUint32 writes v as big-endian at off.
func PutUint32(buf []byte, off uint32, v uint32) {
	binary.BigEndian.PutUint32(buf[off:off+4], v)
}

// Span returns a view of buf[off:off+n]. The returned slice aliases buf.
func Span(buf []byte, off uint32, n uint32) []byte {
	return buf[off : off+n]
}

// PutSpan copies src into buf starting at off. len(src) bytes are written.
func PutSpan(buf []byte, off uint32, src []byte) {
	copy(buf[off:off+uint32(len(src)):off+uint32(len(src))], src)
}
