package store

import "testing"

func TestUint16RoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	PutUint16(buf, 4, 0xBEEF)
	if got := Uint16(buf, 4); got != 0xBEEF {
		t.Fatalf("Uint16 = %#04x, want 0xbeef", got)
	}
	if buf[4] != 0xBE || buf[5] != 0xEF {
		t.Fatalf("expected big-endian byte order, got % x", buf[4:6])
	}
}

func TestUint32RoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	PutUint32(buf, 0, 0xDEADBEEF)
	if got := Uint32(buf, 0); got != 0xDEADBEEF {
		t.Fatalf("Uint32 = %#08x, want 0xdeadbeef", got)
	}
	if buf[0] != 0xDE || buf[3] != 0xEF {
		t.Fatalf("expected big-endian byte order, got % x", buf[0:4])
	}
}

func TestSpanAliasesBuffer(t *testing.T) {
	buf := make([]byte, 16)
	PutSpan(buf, 2, []byte{1, 2, 3})
	got := Span(buf, 2, 3)
	if got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("Span = %v, want [1 2 3]", got)
	}

	got[0] = 9
	if buf[2] != 9 {
		t.Fatal("Span must alias the underlying buffer")
	}
}

func TestPutSpanShorterThanField(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	PutSpan(buf, 0, []byte{0xAA})
	if buf[0] != 0xAA {
		t.Fatalf("buf[0] = %#x, want 0xaa", buf[0])
	}
	if buf[1] != 0xFF {
		t.Fatal("PutSpan must not touch bytes beyond len(src)")
	}
}
