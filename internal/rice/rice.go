// Package rice implements the codec's variable-length entropy coder: Rice
// coding when the Golomb divisor is a power of two, classical Golomb coding
// (quotient/remainder with a truncated-binary remainder) otherwise, with the
// zero-escape and multi-escape outlier mechanisms of spec.md §4.4.
//
// Decode is grounded on the unary-prefix + k-raw-bits residual decode loop of
// the teacher's frame/subframe.go (riceDecode), generalised from a fixed
// Rice parameter to the Rice/Golomb split and the two escape policies this
// codec requires.
package rice

import (
	"math/bits"

	"github.com/icza/bitio"

	"github.com/dloidolt/plato-rdcu/internal/bitpack"
)

// Escape selects the outlier mechanism active for a mode.
type Escape int

const (
	EscapeZero Escape = iota
	EscapeMulti
)

// MaxCodewordBits bounds every normal codeword (including the escape
// sentinel codewords) to fit a single bitpack.PutNBits32 call.
const MaxCodewordBits = 32

// maxMultiOffset is the highest row of the multi-escape step table
// (spec.md §4.4): d > 0x3FFFFFFF saturates at offset 15.
const maxMultiOffset = 15

// Params bundles the divisor m and its derived Rice/Golomb shape.
type Params struct {
	M      uint32
	IsRice bool
	// Log2M is floor(log2(m)): the Rice remainder width, or one less than
	// the Golomb truncated-binary codeword width.
	Log2M uint
	// Cutoff is the Golomb cutoff c = 2^(Log2M+1) - m; unused for Rice.
	Cutoff uint64
}

// NewParams derives the codeword shape for divisor m. m must be >= 1.
func NewParams(m uint32) Params {
	p := Params{M: m}
	if m&(m-1) == 0 {
		p.IsRice = true
		p.Log2M = uint(bits.TrailingZeros32(m))
		return p
	}
	p.Log2M = uint(bits.Len32(m) - 1) // floor(log2(m))
	c := uint64(1)<<(p.Log2M+1) - uint64(m)
	if c == 0 {
		c = uint64(m)
	}
	p.Cutoff = c
	return p
}

// codeword computes the (value, length) pair for the normal (non-escape)
// encoding of u, per spec.md §4.4. The returned length is guaranteed <= 32
// bits for any u a caller has validated against MaxSpill.
func (p Params) codeword(u uint64) (value uint64, length uint) {
	if p.IsRice {
		q := u >> p.Log2M
		r := u & (uint64(1)<<p.Log2M - 1)
		return uint64(1)<<p.Log2M | r, uint(q) + 1 + p.Log2M
	}

	m64 := uint64(p.M)
	q := u / m64
	r := u % m64
	if r < p.Cutoff {
		return uint64(1)<<p.Log2M | r, uint(q) + 1 + p.Log2M
	}
	v := r + p.Cutoff
	return uint64(1)<<(p.Log2M+1) | v, uint(q) + 1 + p.Log2M + 1
}

// CodewordLen returns the bit length of the normal encoding of u.
func (p Params) CodewordLen(u uint64) uint {
	_, n := p.codeword(u)
	return n
}

// calMultiOffset computes cal_multi_offset(d) = ceil(log4(d+1)) via the
// spec's 16-row step table: d <= 3 -> 0, d <= 15 -> 1, d <= 63 -> 2, ...
func calMultiOffset(d uint64) uint {
	if d > 0x3FFFFFFF {
		return maxMultiOffset
	}
	offset := uint(0)
	bound := uint64(3)
	for d > bound {
		offset++
		bound = bound*4 + 3
	}
	return offset
}

// MinSpill is the smallest legal spill threshold.
const MinSpill = 1

// MaxSpill returns the largest legal spill for (m, escape): the largest
// value such that the codeword of the largest symbol the encoder can emit
// (spill under zero-escape, reached when the +1 bias lifts spill-1; the
// multi-escape sentinel spill+15 under multi-escape) still fits
// MaxCodewordBits. It is a pure function of (m, escape), so encoder and
// decoder always agree on the limit.
func MaxSpill(m uint32, escape Escape) uint32 {
	p := NewParams(m)
	best := uint32(MinSpill)
	for spill := uint32(MinSpill); ; spill++ {
		sym := uint64(spill)
		if escape == EscapeMulti {
			sym += maxMultiOffset
		}
		if p.CodewordLen(sym) > MaxCodewordBits {
			break
		}
		best = spill
		if spill == 0xFFFFFFFF {
			break
		}
	}
	return best
}

// IsOutlier reports whether u must be encoded via the escape path for the
// given spill threshold and escape mechanism.
func IsOutlier(u uint64, spill uint32, escape Escape) bool {
	if u >= uint64(spill) {
		return true
	}
	return escape == EscapeZero && u == 0
}

// Writer packs codewords directly into Dst, the caller's own destination
// buffer (read as consecutive big-endian 32-bit words), addressed via
// bitpack.PutNBits32 and advancing its own bit cursor. It never allocates:
// every codeword is written in place over the caller-provided buffer.
type Writer struct {
	Dst        []byte
	DstWords16 int
	BitPos     int
}

// put writes the n low-order bits of value at the writer's current cursor
// and advances it.
func (w *Writer) put(value uint64, n uint) error {
	if n == 0 {
		return nil
	}
	written, err := bitpack.PutNBits32(w.Dst, w.BitPos, n, uint32(value), w.DstWords16)
	if err != nil {
		return err
	}
	w.BitPos += written
	return nil
}

// EncodeValue emits one value through the normal codeword or the active
// escape mechanism, per spec.md §4.4. u is the field's unbiased folded
// value (internal/mapper.FoldField's output): the escape trigger and the
// escape path's raw payload both operate on this unbiased value, matching
// spec.md's worked scenarios exactly. biased requests the zero-escape +1
// bias (spec.md §4.3), applied only to a value actually reaching the
// normal codeword — never to the escape sentinel or its raw payload, since
// 0 is already reserved and never itself biased. bitLen is the field's
// native bit width, used by the zero-escape raw payload.
func (w *Writer) EncodeValue(u uint64, p Params, spill uint32, escape Escape, bitLen uint, biased bool) error {
	switch {
	case escape == EscapeZero && (u == 0 || u >= uint64(spill)):
		value, length := p.codeword(0)
		if err := w.put(value, length); err != nil {
			return err
		}
		return w.put(u, bitLen)

	case escape == EscapeMulti && u >= uint64(spill):
		d := u - uint64(spill)
		offset := calMultiOffset(d)
		value, length := p.codeword(uint64(spill) + uint64(offset))
		if err := w.put(value, length); err != nil {
			return err
		}
		return w.put(d, (offset+1)*2)

	default:
		uu := u
		if biased {
			uu++
		}
		value, length := p.codeword(uu)
		return w.put(value, length)
	}
}

// DecodeValue reads one value encoded by EncodeValue off a sequential bit
// reader, mirroring the unary-prefix + k-raw-bits residual decode loop of
// the teacher's frame.Header.DecodeRice / riceDecode. It returns the
// unbiased folded value, undoing biased's +1 offset on the normal path
// exactly where EncodeValue applied it.
func DecodeValue(br *bitio.Reader, p Params, spill uint32, escape Escape, bitLen uint, biased bool) (uint64, error) {
	sym, err := p.decodeNormal(br)
	if err != nil {
		return 0, err
	}

	switch {
	case escape == EscapeZero && sym == 0:
		raw, err := br.ReadBits(byte(bitLen))
		if err != nil {
			return 0, err
		}
		return raw, nil

	case escape == EscapeMulti && sym >= uint64(spill):
		offset := uint(sym - uint64(spill))
		raw, err := br.ReadBits(byte((offset + 1) * 2))
		if err != nil {
			return 0, err
		}
		return uint64(spill) + raw, nil

	default:
		if biased {
			return sym - 1, nil
		}
		return sym, nil
	}
}

// decodeNormal reads one normal codeword: an unary-coded quotient followed
// by a truncated-binary remainder (Rice's fixed-width remainder is the
// degenerate case where the cutoff never applies). The quotient is read bit
// by bit straight off br rather than through a shared unary helper: this
// package is the only caller that needs an unary prefix, so a standalone
// helper would carry a single, un-adapted call site (see DESIGN.md).
func (p Params) decodeNormal(br *bitio.Reader) (uint64, error) {
	var q uint64
	for {
		bit, err := br.ReadBool()
		if err != nil {
			return 0, err
		}
		if bit {
			break
		}
		q++
	}

	if p.IsRice {
		if p.Log2M == 0 {
			return q, nil
		}
		r, err := br.ReadBits(byte(p.Log2M))
		if err != nil {
			return 0, err
		}
		return q<<p.Log2M | r, nil
	}

	t, err := br.ReadBits(byte(p.Log2M))
	if err != nil {
		return 0, err
	}
	var r uint64
	if t < p.Cutoff {
		r = t
	} else {
		extra, err := br.ReadBits(1)
		if err != nil {
			return 0, err
		}
		v := t<<1 | extra
		r = v - p.Cutoff
	}
	return q*uint64(p.M) + r, nil
}
