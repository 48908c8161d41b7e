// Package icu implements the compression pipeline: per-sample lossy
// rounding and differencing or model prediction, a signed-to-unsigned
// fold, a Rice/Golomb entropy coder with zero-escape and multi-escape
// outlier handling, and a big-endian bit-packer. It mirrors spec.md §6's
// external call surface (icu_compress_data, compress_chunk_cmp_size_bound)
// as CompressData, DecompressData and ChunkCompressedSizeBound.
package icu

import (
	"github.com/dloidolt/plato-rdcu/internal/diag"
	"github.com/dloidolt/plato-rdcu/internal/rice"
	"github.com/dloidolt/plato-rdcu/internal/validate"
)

// ErrBit mirrors the closed set of error flags spec.md §6 assigns to
// info.cmp_err. Multiple bits may be set on a single call.
type ErrBit = validate.ErrBit

const (
	ModeErrBit        = validate.ModeErrBit
	ModelValueErrBit  = validate.ModelValueErrBit
	ParErrBit         = validate.ParErrBit
	AP1ParErrBit      = validate.AP1ParErrBit
	AP2ParErrBit      = validate.AP2ParErrBit
	SmallBufferErrBit = validate.SmallBufferErrBit
)

// SmallBuffer is the sentinel return value for a too-small output buffer
// (spec.md §6).
const SmallBuffer = -2

const (
	MaxModelValue   = validate.MaxModelValue
	MaxICURound     = validate.MaxICURound
	MinICUGolombPar = validate.MinICUGolombPar
	MaxICUGolombPar = validate.MaxICUGolombPar
	MinICUSpill     = validate.MinICUSpill
)

// GolombParExposureFlags is the fixed Golomb parameter the exp_flags field
// is always encoded with, independent of Config.GolombPar (spec.md §4.4,
// "Record emission order"). exp_flags is an 8-bit, typically near-constant
// flag byte, so a small divisor (Rice coding, m == 1 degenerates to unary)
// suits it better than a configurable parameter tuned for 32-bit scalar
// fields; recorded as an Open Question resolution in DESIGN.md.
const GolombParExposureFlags = 1

// Config is the validated, immutable configuration for one compression call
// (spec.md §3); DecompressConfig is its decompression counterpart.
type Config struct {
	Mode         Mode
	GolombPar    uint32
	Spill        uint32
	ModelValue   uint
	Round        uint
	Samples      int
	BufferLength int // output capacity in 16-bit words

	Input        []byte
	Model        []byte
	UpdatedModel []byte
	Output       []byte

	// Logger receives diagnostic lines; nil is valid and silent.
	Logger diag.Logger
}

// Result is the execution result mirrored back to the caller (spec.md §3):
// an error bitset, the compressed size in bits, the configuration
// parameters actually used, and any advisory warnings.
type Result struct {
	CmpErr ErrBit
	CmpSize int

	GolombPar  uint32
	Spill      uint32
	ModelValue uint
	Round      uint
	Samples    int

	Warnings []string
}

// maxSpillFor is a thin wrapper so callers can compute the legal spill
// range for a (golomb_par, mode) pair without reaching into internal/rice
// directly.
func maxSpillFor(golombPar uint32, m Mode) uint32 {
	d, ok := m.lookup()
	if !ok {
		return 0
	}
	return rice.MaxSpill(golombPar, d.escape)
}

// MaxSpill returns the largest legal spill threshold for golombPar under
// mode m, or 0 if m is not a recognised mode.
func MaxSpill(golombPar uint32, m Mode) uint32 {
	return maxSpillFor(golombPar, m)
}
