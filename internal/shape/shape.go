// Package shape describes the closed set of sample shapes the codec
// recognises, each as a table of field descriptors. Every pipeline stage
// (pre-processor, mapper, entropy coder) drives itself off this table
// instead of repeating a per-shape switch statement, per the field
// descriptor design in the project's Design Notes.
package shape

// Field describes one scalar field within a sample record: its byte offset,
// its bit width, and whether it participates in the zero-escape +1 bias.
type Field struct {
	// Name identifies the field. The root package's paramsForField matches
	// on "exp_flags" to select that field's fixed Golomb parameter.
	Name string
	// Offset is the field's byte offset within one sample record.
	Offset int
	// Width is the field's native bit width (8, 16, or 32).
	Width uint
	// Biasable reports whether this field is biased by +1 under the
	// zero-escape mechanism. Exposure-flags fields are never biasable.
	Biasable bool
}

// Descriptor is the fixed in-memory layout of one sample shape: its total
// record size and its ordered field list (encoding/decoding order always
// follows this slice).
type Descriptor struct {
	// Name identifies the shape for diagnostics.
	Name string
	// Size is the in-memory size of one sample record, in bytes.
	Size int
	// Fields lists the shape's fields in record and bitstream order.
	Fields []Field
}

// Shape is the closed enum of sample shapes in spec.md §3.
type Shape int

const (
	U16 Shape = iota
	U32
	SFx
	SFxEfx
	SFxNcob
	SFxEfxNcobEcob
	FFx
)

var descriptors = map[Shape]Descriptor{
	U16: {
		Name: "U16",
		Size: 2,
		Fields: []Field{
			{Name: "v", Offset: 0, Width: 16, Biasable: true},
		},
	},
	U32: {
		Name: "U32",
		Size: 4,
		Fields: []Field{
			{Name: "v", Offset: 0, Width: 32, Biasable: true},
		},
	},
	// FFx is an alias of U32 for preprocessing purposes (spec.md §3).
	FFx: {
		Name: "F_FX",
		Size: 4,
		Fields: []Field{
			{Name: "fx", Offset: 0, Width: 32, Biasable: true},
		},
	},
	SFx: {
		Name: "S_FX",
		Size: 5,
		Fields: []Field{
			{Name: "exp_flags", Offset: 0, Width: 8, Biasable: false},
			{Name: "fx", Offset: 1, Width: 32, Biasable: true},
		},
	},
	SFxEfx: {
		Name: "S_FX_EFX",
		Size: 9,
		Fields: []Field{
			{Name: "exp_flags", Offset: 0, Width: 8, Biasable: false},
			{Name: "fx", Offset: 1, Width: 32, Biasable: true},
			{Name: "efx", Offset: 5, Width: 32, Biasable: true},
		},
	},
	SFxNcob: {
		Name: "S_FX_NCOB",
		Size: 13,
		Fields: []Field{
			{Name: "exp_flags", Offset: 0, Width: 8, Biasable: false},
			{Name: "fx", Offset: 1, Width: 32, Biasable: true},
			{Name: "ncob_x", Offset: 5, Width: 32, Biasable: true},
			{Name: "ncob_y", Offset: 9, Width: 32, Biasable: true},
		},
	},
	SFxEfxNcobEcob: {
		Name: "S_FX_EFX_NCOB_ECOB",
		Size: 25,
		Fields: []Field{
			{Name: "exp_flags", Offset: 0, Width: 8, Biasable: false},
			{Name: "fx", Offset: 1, Width: 32, Biasable: true},
			{Name: "ncob_x", Offset: 5, Width: 32, Biasable: true},
			{Name: "ncob_y", Offset: 9, Width: 32, Biasable: true},
			{Name: "efx", Offset: 13, Width: 32, Biasable: true},
			{Name: "ecob_x", Offset: 17, Width: 32, Biasable: true},
			{Name: "ecob_y", Offset: 21, Width: 32, Biasable: true},
		},
	},
}

// Of returns the field descriptor table for a shape. ok is false for an
// unrecognised shape value.
func Of(s Shape) (Descriptor, bool) {
	d, ok := descriptors[s]
	return d, ok
}
