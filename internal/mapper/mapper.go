// Package mapper drives the per-field signed-to-unsigned fold
// (internal/bits.MapToPos) across a sample record using an
// internal/shape.Descriptor. Grounded on the teacher's frame/subframe.go
// wasted-bits handling, which likewise reads a per-sample shape once and
// then drives a uniform per-field transform loop rather than switching on
// the concrete subframe kind at every sample.
//
// The zero-escape +1 bias of spec.md §4.3 is not applied here: the worked
// scenarios make clear the escape trigger and the escape path's raw payload
// both use the unbiased folded value, so bias only ever applies to a
// codeword actually built on the normal (non-escape) path — internal/rice
// applies it there, scoped to the field's Biasable flag.
package mapper

import (
	"github.com/dloidolt/plato-rdcu/internal/bits"
	"github.com/dloidolt/plato-rdcu/internal/shape"
)

// FoldField folds one field's signed residual r into its unsigned bitstream
// representation. The fold wraps within the field's n-bit width, matching
// spec.md's explicit modular-arithmetic contract.
func FoldField(r uint64, n uint) uint64 {
	return bits.MapToPos(r, n)
}

// UnfoldField inverts FoldField.
func UnfoldField(u uint64, n uint) uint64 {
	return bits.MapToPosInv(u, n)
}

// FoldRecord folds every field of one sample record in place, driven by d.
// src and dst must each hold len(d.Fields) values, ordered as in d.Fields.
func FoldRecord(dst, src []uint64, d shape.Descriptor) {
	for i, f := range d.Fields {
		dst[i] = FoldField(src[i], f.Width)
	}
}

// UnfoldRecord inverts FoldRecord.
func UnfoldRecord(dst, src []uint64, d shape.Descriptor) {
	for i, f := range d.Fields {
		dst[i] = UnfoldField(src[i], f.Width)
	}
}
