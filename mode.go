package icu

import (
	"github.com/dloidolt/plato-rdcu/internal/rice"
	"github.com/dloidolt/plato-rdcu/internal/shape"
)

// Mode is the codec's closed dispatch enum (spec.md §6). The prefix selects
// pre-processing (RAW bypasses both, MODEL_* predicts against a model,
// DIFF_* differentiates); the suffix selects the escape mechanism (ZERO,
// MULTI) and, for non-scalar shapes, the concrete structured layout.
type Mode int

const (
	ModeRaw Mode = iota
	ModeRawSFx

	ModeModelZero
	ModeModelZeroSFx
	ModeModelZeroSFxEfx
	ModeModelZeroSFxNcob
	ModeModelZeroSFxEfxNcobEcob
	ModeModelZero32
	ModeModelZeroFFx

	ModeModelMulti
	ModeModelMultiSFx
	ModeModelMultiSFxEfx
	ModeModelMultiSFxNcob
	ModeModelMultiSFxEfxNcobEcob
	ModeModelMulti32
	ModeModelMultiFFx

	ModeDiffZero
	ModeDiffZeroSFx
	ModeDiffZeroSFxEfx
	ModeDiffZeroSFxNcob
	ModeDiffZeroSFxEfxNcobEcob
	ModeDiffZero32
	ModeDiffZeroFFx

	ModeDiffMulti
	ModeDiffMultiSFx
	ModeDiffMultiSFxEfx
	ModeDiffMultiSFxNcob
	ModeDiffMultiSFxEfxNcobEcob
	ModeDiffMulti32
	ModeDiffMultiFFx
)

// preprocKind selects which pre-processor stage a mode runs.
type preprocKind int

const (
	preprocRaw preprocKind = iota
	preprocModel
	preprocDiff
)

// descriptor names a mode's shape, pre-processing strategy and escape
// strategy, replacing the giant per-stage mode switch the Design Notes
// call out (spec.md §9: "Dispatch").
type descriptor struct {
	shape   shape.Shape
	pre     preprocKind
	escape  rice.Escape
	isModel bool
}

var modeTable = map[Mode]descriptor{
	ModeRaw:    {shape: shape.U16, pre: preprocRaw},
	ModeRawSFx: {shape: shape.SFx, pre: preprocRaw},

	ModeModelZero:               {shape: shape.U16, pre: preprocModel, escape: rice.EscapeZero, isModel: true},
	ModeModelZeroSFx:            {shape: shape.SFx, pre: preprocModel, escape: rice.EscapeZero, isModel: true},
	ModeModelZeroSFxEfx:         {shape: shape.SFxEfx, pre: preprocModel, escape: rice.EscapeZero, isModel: true},
	ModeModelZeroSFxNcob:        {shape: shape.SFxNcob, pre: preprocModel, escape: rice.EscapeZero, isModel: true},
	ModeModelZeroSFxEfxNcobEcob: {shape: shape.SFxEfxNcobEcob, pre: preprocModel, escape: rice.EscapeZero, isModel: true},
	ModeModelZero32:             {shape: shape.U32, pre: preprocModel, escape: rice.EscapeZero, isModel: true},
	ModeModelZeroFFx:            {shape: shape.FFx, pre: preprocModel, escape: rice.EscapeZero, isModel: true},

	ModeModelMulti:               {shape: shape.U16, pre: preprocModel, escape: rice.EscapeMulti, isModel: true},
	ModeModelMultiSFx:            {shape: shape.SFx, pre: preprocModel, escape: rice.EscapeMulti, isModel: true},
	ModeModelMultiSFxEfx:         {shape: shape.SFxEfx, pre: preprocModel, escape: rice.EscapeMulti, isModel: true},
	ModeModelMultiSFxNcob:        {shape: shape.SFxNcob, pre: preprocModel, escape: rice.EscapeMulti, isModel: true},
	ModeModelMultiSFxEfxNcobEcob: {shape: shape.SFxEfxNcobEcob, pre: preprocModel, escape: rice.EscapeMulti, isModel: true},
	ModeModelMulti32:             {shape: shape.U32, pre: preprocModel, escape: rice.EscapeMulti, isModel: true},
	ModeModelMultiFFx:            {shape: shape.FFx, pre: preprocModel, escape: rice.EscapeMulti, isModel: true},

	ModeDiffZero:               {shape: shape.U16, pre: preprocDiff, escape: rice.EscapeZero},
	ModeDiffZeroSFx:            {shape: shape.SFx, pre: preprocDiff, escape: rice.EscapeZero},
	ModeDiffZeroSFxEfx:         {shape: shape.SFxEfx, pre: preprocDiff, escape: rice.EscapeZero},
	ModeDiffZeroSFxNcob:        {shape: shape.SFxNcob, pre: preprocDiff, escape: rice.EscapeZero},
	ModeDiffZeroSFxEfxNcobEcob: {shape: shape.SFxEfxNcobEcob, pre: preprocDiff, escape: rice.EscapeZero},
	ModeDiffZero32:             {shape: shape.U32, pre: preprocDiff, escape: rice.EscapeZero},
	ModeDiffZeroFFx:            {shape: shape.FFx, pre: preprocDiff, escape: rice.EscapeZero},

	ModeDiffMulti:               {shape: shape.U16, pre: preprocDiff, escape: rice.EscapeMulti},
	ModeDiffMultiSFx:            {shape: shape.SFx, pre: preprocDiff, escape: rice.EscapeMulti},
	ModeDiffMultiSFxEfx:         {shape: shape.SFxEfx, pre: preprocDiff, escape: rice.EscapeMulti},
	ModeDiffMultiSFxNcob:        {shape: shape.SFxNcob, pre: preprocDiff, escape: rice.EscapeMulti},
	ModeDiffMultiSFxEfxNcobEcob: {shape: shape.SFxEfxNcobEcob, pre: preprocDiff, escape: rice.EscapeMulti},
	ModeDiffMulti32:             {shape: shape.U32, pre: preprocDiff, escape: rice.EscapeMulti},
	ModeDiffMultiFFx:            {shape: shape.FFx, pre: preprocDiff, escape: rice.EscapeMulti},
}

// isRaw reports whether m is one of the two raw-copy modes.
func (m Mode) isRaw() bool {
	return m == ModeRaw || m == ModeRawSFx
}

// lookup returns m's descriptor and whether m is a recognised enum variant.
func (m Mode) lookup() (descriptor, bool) {
	d, ok := modeTable[m]
	return d, ok
}
