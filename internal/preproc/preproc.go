// Package preproc implements the codec's per-sample pre-processing stage:
// lossy rounding, 1-D differencing, and model-based prediction with a
// weighted model update, each as a pure scalar step over one field's one
// sample (DiffInverse and ModelInverse apply the inverse steps over a whole
// field column for the decompressor). Grounded on the teacher's
// analysis_fixed.go fixed-predictor
// residual loop (derive a per-sample residual from its predecessor under an
// explicit wrap-around subtraction), generalised from a single int32 stream
// to this codec's field-descriptor-driven, multi-width records — and kept
// scalar rather than whole-column so the pipeline driver can run the
// forward transform in the same single pass that reads and bit-packs each
// sample, carrying only a small fixed amount of state between samples
// instead of allocating a column buffer per call (spec.md §1, §5:
// allocation-free on the hot path).
package preproc

// MaxModelValue is the upper bound of the model_value weight (spec.md §3).
const MaxModelValue = 16

// RoundFwd applies the lossy forward rounding round_fwd(v, k) = v >> k.
func RoundFwd(v uint64, k uint) uint64 {
	if k == 0 {
		return v
	}
	return v >> k
}

// RoundInv inverts RoundFwd: round_inv(v, k) = v << k. This reconstructs the
// rounded value, not the original — lossless only when k == 0.
func RoundInv(v uint64, k uint, width uint) uint64 {
	if k == 0 {
		return v
	}
	return maskN(v<<k, width)
}

func maskN(x uint64, n uint) uint64 {
	if n >= 64 {
		return x
	}
	return x & (uint64(1)<<n - 1)
}

// DiffForwardSample applies lossy rounding then 1-D differencing to one
// sample of one field's column: residual = round(x) - prevRounded, wrapping
// in the field's unsigned width (spec.md §4.2). prevRounded is the previous
// sample's rounded value, or 0 before the first sample — seeding with 0
// degenerates the subtraction to round(x) itself, i.e. the first sample's
// residual is just its own rounded value, r[0] = round(x[0]). It returns the residual to encode and the rounded
// value the caller must pass back in as prevRounded for the next sample.
func DiffForwardSample(x uint64, prevRounded uint64, width uint, round uint) (residual uint64, newRounded uint64) {
	rx := RoundFwd(x, round)
	return maskN(rx-prevRounded, width), rx
}

// DiffInverseSample inverts DiffForwardSample: output is the reconstructed
// sample, and newRounded is what the caller must pass back in as
// prevRounded for the next sample (the cumulative sum stays in the rounded
// domain across samples; RoundInv is applied fresh each call since it has
// no cross-sample state of its own).
func DiffInverseSample(residual uint64, prevRounded uint64, width uint, round uint) (output uint64, newRounded uint64) {
	newRounded = maskN(residual+prevRounded, width)
	return RoundInv(newRounded, round, width), newRounded
}

// CalUpModel computes the updated model value as a weighted blend of the
// rounded-back observation a and the prior model b, with weight w in
// [0, MaxModelValue] applied to the observation and (MaxModelValue - w)
// applied to the prior model, rounded to nearest. This resolves spec.md's
// open question on the exact blend formula: weight w favours the new
// observation as it grows, consistent with "model_value weighs model vs
// observation" (§3).
func CalUpModel(a, b uint64, w uint, width uint) uint64 {
	if w > MaxModelValue {
		w = MaxModelValue
	}
	num := a*uint64(w) + b*uint64(MaxModelValue-w) + MaxModelValue/2
	return maskN(num/MaxModelValue, width)
}

// ModelForwardSample applies lossy rounding and model-based prediction to
// one sample of one field against its model value m (spec.md §4.2),
// returning the residual to encode and the updated model value. Unlike
// differencing, prediction has no cross-sample state: every sample's
// residual and model update depend only on that sample's own x and m.
func ModelForwardSample(x, m uint64, width uint, round uint, modelValue uint) (residual uint64, updatedModel uint64) {
	rin := RoundFwd(x, round)
	rm := RoundFwd(m, round)
	residual = maskN(rin-rm, width)
	observed := RoundInv(rin, round, width)
	updatedModel = CalUpModel(observed, m, modelValue, width)
	return residual, updatedModel
}

// ModelInverseSample inverts ModelForwardSample: given the decoded residual
// and the model value m, it returns the reconstructed output sample and the
// updated model value.
func ModelInverseSample(residual, m uint64, width uint, round uint, modelValue uint) (output uint64, updatedModel uint64) {
	rm := RoundFwd(m, round)
	rin := maskN(residual+rm, width)
	observed := RoundInv(rin, round, width)
	updatedModel = CalUpModel(observed, m, modelValue, width)
	return observed, updatedModel
}

// DiffInverse inverts DiffForwardSample across a whole field column, in
// place: col holds decoded residuals on entry and reconstructed samples on
// return. It walks head-to-tail carrying the running rounded sum, the
// mirror image of the compressor's head-to-tail DiffForwardSample pass,
// since each step only needs the previous sample's already-reconstructed
// rounded value.
func DiffInverse(col []uint64, width uint, round uint) {
	var prevRounded uint64
	for i := range col {
		out, newRounded := DiffInverseSample(col[i], prevRounded, width, round)
		col[i] = out
		prevRounded = newRounded
	}
}

// ModelInverse inverts ModelForwardSample across a whole field column, in
// place: col holds decoded residuals on entry and reconstructed samples on
// return. modelCol holds the model's value for each sample; it is updated
// in place unless updatedCol is non-nil, in which case the updated model
// values are written there instead (mirroring compress.go's
// cfg.UpdatedModel/cfg.Model choice).
func ModelInverse(col, modelCol []uint64, width uint, round uint, modelValue uint, updatedCol []uint64) {
	for i := range col {
		out, updated := ModelInverseSample(col[i], modelCol[i], width, round, modelValue)
		col[i] = out
		if updatedCol != nil {
			updatedCol[i] = updated
		} else {
			modelCol[i] = updated
		}
	}
}
