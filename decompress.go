package icu

import (
	"bytes"

	"github.com/icza/bitio"

	"github.com/dloidolt/plato-rdcu/internal/mapper"
	"github.com/dloidolt/plato-rdcu/internal/preproc"
	"github.com/dloidolt/plato-rdcu/internal/rice"
	"github.com/dloidolt/plato-rdcu/internal/shape"
)

// DecompressConfig mirrors Config for the inverse direction: Compressed is
// the bitstream CompressData produced (CmpSize bits of it are meaningful);
// Output receives the reconstructed (rounded) samples in the same
// big-endian record layout CompressData read from Input.
type DecompressConfig struct {
	Mode       Mode
	GolombPar  uint32
	Spill      uint32
	ModelValue uint
	Round      uint
	Samples    int
	CmpSize    int // compressed size in bits, as reported by Result.CmpSize

	Compressed   []byte
	Model        []byte
	UpdatedModel []byte
	Output       []byte
}

// DecompressData performs a full decompression, the mirror image of
// CompressData: same mode, golomb_par, spill, model_value, round and
// initial model reconstruct round_inv(round_fwd(input)) exactly (spec.md §8
// round-trip property).
func DecompressData(cfg DecompressConfig) (int, Result) {
	res := Result{
		GolombPar:  cfg.GolombPar,
		Spill:      cfg.Spill,
		ModelValue: cfg.ModelValue,
		Round:      cfg.Round,
		Samples:    cfg.Samples,
	}

	d, ok := cfg.Mode.lookup()
	if !ok {
		res.CmpErr |= ModeErrBit
		return -1, res
	}

	if cfg.Samples == 0 {
		return 0, res
	}

	desc, _ := shape.Of(d.shape)

	if cfg.Mode.isRaw() {
		n := cfg.Samples * desc.Size
		copy(cfg.Output, cfg.Compressed[:n])
		return 0, res
	}

	rp := rice.NewParams(cfg.GolombPar)
	br := bitio.NewReader(bytes.NewReader(cfg.Compressed))

	fieldCols := make([][]uint64, len(desc.Fields))
	for fi := range desc.Fields {
		fieldCols[fi] = make([]uint64, cfg.Samples)
	}

	for i := 0; i < cfg.Samples; i++ {
		for fi, f := range desc.Fields {
			biased := d.escape == rice.EscapeZero && f.Biasable
			fp, fspill := paramsForField(f, rp, cfg.Spill, d.escape)
			u, err := rice.DecodeValue(br, fp, fspill, d.escape, f.Width, biased)
			if err != nil {
				res.CmpErr |= SmallBufferErrBit
				return -1, res
			}
			fieldCols[fi][i] = u
		}
	}

	for fi, f := range desc.Fields {
		col := fieldCols[fi]
		for i := range col {
			col[i] = mapper.UnfoldField(col[i], f.Width)
		}

		switch d.pre {
		case preprocDiff:
			preproc.DiffInverse(col, f.Width, cfg.Round)
		case preprocModel:
			modelCol := make([]uint64, cfg.Samples)
			fieldColumn(modelCol, cfg.Model, desc, f, cfg.Samples)
			var updatedCol []uint64
			if cfg.UpdatedModel != nil {
				updatedCol = make([]uint64, cfg.Samples)
			}
			preproc.ModelInverse(col, modelCol, f.Width, cfg.Round, cfg.ModelValue, updatedCol)
			if updatedCol != nil {
				writeFieldColumn(cfg.UpdatedModel, desc, f, updatedCol, cfg.Samples)
			} else {
				writeFieldColumn(cfg.Model, desc, f, modelCol, cfg.Samples)
			}
		case preprocRaw:
			for i := range col {
				col[i] = preproc.RoundInv(col[i], cfg.Round, f.Width)
			}
		}

		writeFieldColumn(cfg.Output, desc, f, col, cfg.Samples)
	}

	res.CmpSize = cfg.CmpSize
	return 0, res
}
