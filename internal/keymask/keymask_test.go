package keymask

import (
	"bytes"
	"testing"
)

func testKey() [KeyLen]byte {
	var k [KeyLen]byte
	for i := range k {
		k[i] = byte(i)
	}
	return k
}

func TestMaskIsDeterministic(t *testing.T) {
	m := New(testKey(), SHA256)
	sid := bytes.Repeat([]byte{0x01}, 32)

	a := m.Mask(sid)
	b := m.Mask(sid)
	if a != b {
		t.Fatal("Mask must be deterministic for the same key and input")
	}
}

func TestMaskDependsOnKey(t *testing.T) {
	sid := bytes.Repeat([]byte{0x01}, 32)

	k1 := testKey()
	k2 := testKey()
	k2[0] ^= 0xFF

	a := New(k1, SHA256).Mask(sid)
	b := New(k2, SHA256).Mask(sid)
	if a == b {
		t.Fatal("Mask output must change when the secret key changes")
	}
}

func TestMaskDiffersAcrossHashes(t *testing.T) {
	sid := bytes.Repeat([]byte{0x01}, 32)
	key := testKey()

	outputs := map[[KeyLen]byte]bool{}
	for _, h := range []Hash{SHA256, SHA384, SHA1} {
		outputs[New(key, h).Mask(sid)] = true
	}
	if len(outputs) != 3 {
		t.Fatalf("expected 3 distinct outputs across hash choices, got %d", len(outputs))
	}
}

func TestMaskOutputLength(t *testing.T) {
	m := New(testKey(), SHA384)
	out := m.Mask(bytes.Repeat([]byte{0xAB}, 32))
	if len(out) != KeyLen {
		t.Fatalf("Mask output length = %d, want %d", len(out), KeyLen)
	}
}
