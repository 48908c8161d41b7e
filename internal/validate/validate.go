// Package validate implements the codec's configuration validator
// (spec.md §4.1): every check always runs, never mutates a buffer, and
// reports results as an error-bit set plus a negative problem count, in the
// teacher's errutil/pkg-errors idiom rather than a panic or a single
// first-error return.
package validate

import (
	"github.com/mewkiz/pkg/errutil"

	"github.com/dloidolt/plato-rdcu/internal/rice"
)

// ErrBit is one of the closed set of error flags spec.md §6 assigns to
// info.cmp_err.
type ErrBit uint32

const (
	ModeErrBit ErrBit = 1 << iota
	ModelValueErrBit
	ParErrBit
	AP1ParErrBit
	AP2ParErrBit
	SmallBufferErrBit
)

// Buffers bundles the four caller-owned buffer handles spec.md §3
// describes. Model and UpdatedModel may be nil.
type Buffers struct {
	Input        []byte
	Model        []byte
	UpdatedModel []byte
	Output       []byte
}

// Params bundles the scalar configuration fields the validator checks.
type Params struct {
	IsModelMode bool
	IsRawMode   bool
	GolombPar   uint32
	Spill       uint32
	ModelValue  uint
	Round       uint
	Samples     int
	// BufferLength is the output capacity in 16-bit words.
	BufferLength int
	// ModeValid reports whether Mode is a recognised enum variant.
	ModeValid bool
	// Escape is the outlier mechanism this mode uses, for max_spill.
	Escape rice.Escape
}

const (
	MaxModelValue    = 16
	MaxICURound      = 3
	MinICUGolombPar  = 1
	MaxICUGolombPar  = 0xFFFF
	MinICUSpill      = rice.MinSpill
)

// Result is the outcome of Validate: ErrBits is the accumulated flag set;
// Problems is zero on success, otherwise a negative count of the checks
// that failed. Warnings carries advisory-only findings (spec.md Design
// Notes' two Open Questions) that never contribute to Problems or ErrBits.
type Result struct {
	ErrBits  ErrBit
	Problems int
	Warnings []string
	// RawShortCircuit reports whether raw mode's early exit applies, so the
	// caller can skip the remaining model/golomb/spill/round checks that
	// only make sense for the entropy-coded modes.
	RawShortCircuit bool
}

// Validate runs every check in spec.md §4.1, unconditionally (no
// short-circuit except where the spec itself short-circuits raw mode), and
// returns the accumulated result.
func Validate(p Params, b Buffers) (Result, error) {
	var res Result
	fail := func(bit ErrBit) {
		res.ErrBits |= bit
		res.Problems--
	}

	if b.Input == nil {
		fail(ParErrBit)
	}
	if b.Output == nil {
		fail(ParErrBit)
	} else if sameBuffer(b.Input, b.Output) {
		fail(ParErrBit)
	}

	if p.Samples == 0 {
		res.Warnings = append(res.Warnings, "samples == 0: pipeline exits successfully with compressed size 0")
	}

	if p.BufferLength == 0 && p.Samples > 0 {
		fail(ParErrBit)
	}

	if p.IsModelMode {
		if b.Model == nil || sameBuffer(b.Model, b.Input) || sameBuffer(b.Model, b.Output) {
			fail(AP1ParErrBit)
		}
		if b.UpdatedModel != nil {
			if sameBuffer(b.UpdatedModel, b.Input) || sameBuffer(b.UpdatedModel, b.Output) {
				fail(AP1ParErrBit)
			}
		}
	}

	if p.IsRawMode {
		if p.Samples > p.BufferLength {
			fail(SmallBufferErrBit)
		}
	}

	if !p.ModeValid {
		fail(ModeErrBit)
	}

	if p.IsRawMode {
		res.RawShortCircuit = true
		return finish(res)
	}

	if p.IsModelMode && p.ModelValue > MaxModelValue {
		fail(ModelValueErrBit)
	}

	if p.GolombPar < MinICUGolombPar || p.GolombPar > MaxICUGolombPar {
		fail(AP2ParErrBit)
	} else {
		maxSpill := rice.MaxSpill(p.GolombPar, p.Escape)
		if p.Spill < MinICUSpill || p.Spill > maxSpill {
			fail(AP2ParErrBit)
		}
	}

	if p.Round > MaxICURound {
		fail(AP2ParErrBit)
	}

	// The stale samples*size_of_a_sample < buffer_length*2/3 comparison
	// flagged in the Design Notes' first Open Question is retained as a
	// warning only, never a hard check.
	const roughSampleSize = 4 // a rough per-sample size; shapes range from 2 (U16) to 25 bytes
	if p.Samples*roughSampleSize < p.BufferLength*2/3 {
		res.Warnings = append(res.Warnings, "samples*size_of_a_sample is well under two-thirds of buffer_length: output buffer may be oversized for this input")
	}

	return finish(res)
}

func finish(res Result) (Result, error) {
	if res.Problems < 0 {
		return res, errutil.Newf("validate: %d configuration problem(s) detected: err_bits=%#x", -res.Problems, res.ErrBits)
	}
	return res, nil
}

// sameBuffer reports whether a and b refer to the same backing storage.
// Two nil or empty slices never count as aliasing.
func sameBuffer(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return &a[0] == &b[0]
}
