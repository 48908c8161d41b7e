// Package bitpack implements the codec's word-aligned, offset-addressed bit
// writer. It is deliberately built directly on the standard library: the
// contract (an explicit bit offset from stream start, an exact
// capacity-in-bits sentinel, no hidden internal cursor, and a read-modify-
// write over the caller's own destination buffer rather than an owned
// scratch buffer) has no match among the sequential-cursor bitstream APIs
// available in the retrieved pack (icza/bitio, the ALAC BitBuffer) — see
// DESIGN.md.
package bitpack

import (
	"encoding/binary"
	"errors"
)

// ErrSmallBuffer is returned by PutNBits32 when the requested write would
// exceed the destination's capacity.
var ErrSmallBuffer = errors.New("bitpack: destination buffer too small")

// Capacity returns the addressable capacity, in bits, of a destination sized
// for dstWords16 16-bit words. The expression is deliberately rounded up to
// the next even 16-bit word (i.e. to a whole number of 32-bit words) to stay
// bit-for-bit compatible with the emitted stream.
func Capacity(dstWords16 int) int {
	return ((dstWords16 + 1) / 2) * 32
}

// PutNBits32 writes the n low-order bits of value at bitOffset (counted in
// bits from the start of the stream) directly into dst, the caller's own
// destination buffer, read as consecutive big-endian 32-bit words. It
// clears the destination bits first and handles both the single-word and
// the split-across-two-word case; dst is never replaced or grown, only the
// affected word(s) are read and rewritten in place.
//
// It returns n on success; 0 if n == 0 or n > 32 (a no-op, not an error);
// and ErrSmallBuffer if the write would exceed the capacity implied by
// dstWords16, or would touch a word beyond the actual length of dst.
func PutNBits32(dst []byte, bitOffset int, n uint, value uint32, dstWords16 int) (int, error) {
	if n == 0 || n > 32 {
		return 0, nil
	}
	if bitOffset < 0 || bitOffset+int(n) > Capacity(dstWords16) {
		return 0, ErrSmallBuffer
	}

	if n < 32 {
		value &= uint32(1)<<n - 1
	}

	wordIdx := bitOffset / 32
	bitInWord := uint(bitOffset % 32)
	byteIdx := wordIdx * 4

	if bitInWord+n <= 32 {
		// Single-word case: n == 32 with bitInWord == 0 is the one path that
		// writes a full word, shift == 0, mask == 0xFFFFFFFF.
		if byteIdx+4 > len(dst) {
			return 0, ErrSmallBuffer
		}
		shift := 32 - bitInWord - n
		mask := (uint32(1)<<n - 1) << shift
		word := binary.BigEndian.Uint32(dst[byteIdx:])
		word = (word &^ mask) | (value << shift)
		binary.BigEndian.PutUint32(dst[byteIdx:], word)
		return int(n), nil
	}

	// Split across two words.
	if byteIdx+8 > len(dst) {
		return 0, ErrSmallBuffer
	}
	firstBits := 32 - bitInWord
	secondBits := n - firstBits

	word0 := binary.BigEndian.Uint32(dst[byteIdx:])
	highPart := value >> secondBits
	maskFirst := uint32(1)<<firstBits - 1
	word0 = (word0 &^ maskFirst) | highPart
	binary.BigEndian.PutUint32(dst[byteIdx:], word0)

	word1 := binary.BigEndian.Uint32(dst[byteIdx+4:])
	lowPart := value & (uint32(1)<<secondBits - 1)
	shiftSecond := 32 - secondBits
	maskSecond := (uint32(1)<<secondBits - 1) << shiftSecond
	word1 = (word1 &^ maskSecond) | (lowPart << shiftSecond)
	binary.BigEndian.PutUint32(dst[byteIdx+4:], word1)

	return int(n), nil
}
