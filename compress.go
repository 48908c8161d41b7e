package icu

import (
	"github.com/dloidolt/plato-rdcu/internal/bitpack"
	"github.com/dloidolt/plato-rdcu/internal/diag"
	"github.com/dloidolt/plato-rdcu/internal/mapper"
	"github.com/dloidolt/plato-rdcu/internal/preproc"
	"github.com/dloidolt/plato-rdcu/internal/rice"
	"github.com/dloidolt/plato-rdcu/internal/shape"
	"github.com/dloidolt/plato-rdcu/internal/validate"
)

// CompressData performs a full compression of cfg.Input into cfg.Output,
// mirroring spec.md §6's icu_compress_data. It returns 0 on success,
// negative on error (SmallBuffer == -2 reserved for a too-small output
// buffer), together with the mirrored-back Result.
func CompressData(cfg Config) (int, Result) {
	res := Result{
		GolombPar:  cfg.GolombPar,
		Spill:      cfg.Spill,
		ModelValue: cfg.ModelValue,
		Round:      cfg.Round,
		Samples:    cfg.Samples,
	}

	d, ok := cfg.Mode.lookup()
	vres, _ := validate.Validate(validate.Params{
		IsModelMode:  ok && d.isModel,
		IsRawMode:    cfg.Mode.isRaw(),
		GolombPar:    cfg.GolombPar,
		Spill:        cfg.Spill,
		ModelValue:   cfg.ModelValue,
		Round:        cfg.Round,
		Samples:      cfg.Samples,
		BufferLength: cfg.BufferLength,
		ModeValid:    ok,
		Escape:       d.escape,
	}, validate.Buffers{
		Input:        cfg.Input,
		Model:        cfg.Model,
		UpdatedModel: cfg.UpdatedModel,
		Output:       cfg.Output,
	})

	res.CmpErr = vres.ErrBits
	res.Warnings = vres.Warnings
	for _, w := range vres.Warnings {
		diag.Log(cfg.Logger, "icu: %s", w)
	}

	if vres.Problems < 0 {
		if vres.ErrBits&SmallBufferErrBit != 0 {
			res.CmpSize = 0
			return SmallBuffer, res
		}
		res.CmpSize = 0
		return -1, res
	}

	if cfg.Samples == 0 {
		return 0, res
	}

	desc, _ := shape.Of(d.shape)

	if vres.RawShortCircuit {
		return compressRaw(cfg, desc, &res)
	}

	return compressPipeline(cfg, d, desc, &res)
}

func compressRaw(cfg Config, desc shape.Descriptor, res *Result) (int, Result) {
	needBits := cfg.Samples * desc.Size * 8
	if needBits > bitpack.Capacity(cfg.BufferLength) {
		res.CmpErr |= SmallBufferErrBit
		res.CmpSize = 0
		return SmallBuffer, *res
	}
	n := cfg.Samples * desc.Size
	copy(cfg.Output, cfg.Input[:n])
	res.CmpSize = needBits
	return 0, *res
}

// expFlagsParams and expFlagsSpill implement spec.md §4.4's requirement
// that exp_flags always encodes with a fixed Golomb parameter independent
// of the configured golomb_par; its spill is derived the same pure way as
// any other field's, just against the fixed parameter.
var expFlagsParams = rice.NewParams(GolombParExposureFlags)

func expFlagsSpill(escape rice.Escape) uint32 {
	return rice.MaxSpill(GolombParExposureFlags, escape)
}

// paramsForField selects the Rice/Golomb parameters and spill for field f:
// the fixed exp_flags parameter for that one field, the configured
// golomb_par/spill for every other field.
func paramsForField(f shape.Field, rp rice.Params, spill uint32, escape rice.Escape) (rice.Params, uint32) {
	if f.Name == "exp_flags" {
		return expFlagsParams, expFlagsSpill(escape)
	}
	return rp, spill
}

// maxShapeFields bounds the field count of the largest recognised shape
// (S_FX_EFX_NCOB_ECOB has 7), sizing the fixed, stack-resident per-record
// scratch arrays compressPipeline uses so compression never calls make()
// per sample or per field column (spec.md §1, §5). DecompressData does not
// use them: it allocates one column slice per field.
const maxShapeFields = 8

// compressPipeline runs the per-sample pipeline — pre-processing, the
// signed-to-unsigned fold, and Rice/Golomb entropy coding — in a single
// pass over cfg.Input, writing codewords directly into cfg.Output via
// rice.Writer. It carries only the small fixed-size state differencing
// needs between samples (one previous rounded value per field); model
// prediction needs no cross-sample state at all (spec.md §4.2), so no
// column buffer is ever materialised.
func compressPipeline(cfg Config, d descriptor, desc shape.Descriptor, res *Result) (int, Result) {
	rp := rice.NewParams(cfg.GolombPar)
	w := &rice.Writer{Dst: cfg.Output, DstWords16: cfg.BufferLength}

	nf := len(desc.Fields)
	var prevRounded [maxShapeFields]uint64
	var residuals, folded [maxShapeFields]uint64

	for i := 0; i < cfg.Samples; i++ {
		for fi, f := range desc.Fields {
			x := readField(cfg.Input, desc, i, f)

			var residual uint64
			switch d.pre {
			case preprocDiff:
				residual, prevRounded[fi] = preproc.DiffForwardSample(x, prevRounded[fi], f.Width, cfg.Round)
			case preprocModel:
				m := readField(cfg.Model, desc, i, f)
				var updated uint64
				residual, updated = preproc.ModelForwardSample(x, m, f.Width, cfg.Round, cfg.ModelValue)
				if cfg.UpdatedModel != nil {
					writeField(cfg.UpdatedModel, desc, i, f, updated)
				} else {
					writeField(cfg.Model, desc, i, f, updated)
				}
			case preprocRaw:
				residual = preproc.RoundFwd(x, cfg.Round)
			}
			residuals[fi] = residual
		}

		mapper.FoldRecord(folded[:nf], residuals[:nf], desc)

		for fi, f := range desc.Fields {
			biased := d.escape == rice.EscapeZero && f.Biasable
			fp, fspill := paramsForField(f, rp, cfg.Spill, d.escape)
			if err := w.EncodeValue(folded[fi], fp, fspill, d.escape, f.Width, biased); err != nil {
				res.CmpErr |= SmallBufferErrBit
				res.CmpSize = 0
				return SmallBuffer, *res
			}
		}
	}

	res.CmpSize = w.BitPos
	return 0, *res
}
