package bitpack

import (
	"encoding/binary"
	"testing"
)

func TestPutNBits32SingleWord(t *testing.T) {
	golden := []struct {
		bitOffset int
		n         uint
		value     uint32
		want      uint32
	}{
		{bitOffset: 0, n: 4, value: 0xF, want: 0xF0000000},
		{bitOffset: 4, n: 4, value: 0xA, want: 0x0A000000},
		{bitOffset: 0, n: 32, value: 0xDEADBEEF, want: 0xDEADBEEF},
		{bitOffset: 28, n: 4, value: 0x3, want: 0x00000003},
	}
	for _, g := range golden {
		dst := make([]byte, 4)
		n, err := PutNBits32(dst, g.bitOffset, g.n, g.value, 2)
		if err != nil {
			t.Fatalf("PutNBits32(offset=%d, n=%d): unexpected error: %v", g.bitOffset, g.n, err)
		}
		if n != int(g.n) {
			t.Fatalf("PutNBits32(offset=%d, n=%d): expected return %d, got %d", g.bitOffset, g.n, g.n, n)
		}
		if got := binary.BigEndian.Uint32(dst); got != g.want {
			t.Errorf("PutNBits32(offset=%d, n=%d): expected %#08x, got %#08x", g.bitOffset, g.n, g.want, got)
		}
	}
}

func TestPutNBits32SplitAcrossWords(t *testing.T) {
	dst := make([]byte, 8)
	// 8 bits starting at bit offset 28: 4 bits land in word 0, 4 in word 1.
	n, err := PutNBits32(dst, 28, 8, 0xAB, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 8 {
		t.Fatalf("expected 8 bits written, got %d", n)
	}
	if got := binary.BigEndian.Uint32(dst[0:]); got != 0x0000000A {
		t.Errorf("word 0: expected 0x0000000A, got %#08x", got)
	}
	if got := binary.BigEndian.Uint32(dst[4:]); got != 0xB0000000 {
		t.Errorf("word 1: expected 0xB0000000, got %#08x", got)
	}
}

func TestPutNBits32NoopLengths(t *testing.T) {
	dst := make([]byte, 4)
	for _, n := range []uint{0, 33, 64} {
		got, err := PutNBits32(dst, 0, n, 0xFFFFFFFF, 2)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if got != 0 {
			t.Errorf("n=%d: expected no-op return 0, got %d", n, got)
		}
		if binary.BigEndian.Uint32(dst) != 0 {
			t.Errorf("n=%d: destination must be untouched, got %#08x", n, binary.BigEndian.Uint32(dst))
		}
	}
}

func TestPutNBits32SmallBuffer(t *testing.T) {
	dst := make([]byte, 4)
	// Capacity for dstWords16=2 is 32 bits; writing 1 bit at offset 32 overflows.
	_, err := PutNBits32(dst, 32, 1, 1, 2)
	if err != ErrSmallBuffer {
		t.Fatalf("expected ErrSmallBuffer, got %v", err)
	}
}

func TestPutNBits32RejectsUndersizedDestination(t *testing.T) {
	// dstWords16=4 claims 64 bits of capacity, but dst only backs the first
	// 32: writing into the second word must fail rather than panic.
	dst := make([]byte, 4)
	_, err := PutNBits32(dst, 32, 8, 0xFF, 4)
	if err != ErrSmallBuffer {
		t.Fatalf("expected ErrSmallBuffer, got %v", err)
	}
}

func TestCapacityRoundsUpToEvenWord(t *testing.T) {
	golden := []struct {
		words16 int
		want    int
	}{
		{words16: 0, want: 0},
		{words16: 1, want: 32},
		{words16: 2, want: 32},
		{words16: 3, want: 64},
		{words16: 4, want: 64},
	}
	for _, g := range golden {
		if got := Capacity(g.words16); got != g.want {
			t.Errorf("Capacity(%d): expected %d, got %d", g.words16, g.want, got)
		}
	}
}
