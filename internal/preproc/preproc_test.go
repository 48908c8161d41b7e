package preproc

import "testing"

func TestRoundRoundTrip(t *testing.T) {
	for k := uint(0); k <= 3; k++ {
		for v := uint64(0); v < 1<<10; v++ {
			got := RoundInv(RoundFwd(v, k), k, 16)
			want := (v >> k) << k
			if got != want {
				t.Fatalf("k=%d v=%d: expected %d, got %d", k, v, want, got)
			}
		}
	}
}

// diffForward runs DiffForwardSample over a whole column, mirroring how
// compress.go drives it one sample at a time with carried state.
func diffForward(x []uint64, width uint, round uint) []uint64 {
	out := make([]uint64, len(x))
	var prevRounded uint64
	for i, v := range x {
		out[i], prevRounded = DiffForwardSample(v, prevRounded, width, round)
	}
	return out
}

// diffInverse is diffForward's mirror for DiffInverseSample.
func diffInverse(r []uint64, width uint, round uint) []uint64 {
	out := make([]uint64, len(r))
	var prevRounded uint64
	for i, v := range r {
		out[i], prevRounded = DiffInverseSample(v, prevRounded, width, round)
	}
	return out
}

func TestDiffForwardMatchesWorkedExample(t *testing.T) {
	// scenario 1: input [10, 12, 9, 9] (u16), round=0 -> diff [10, 2, -3, 0]
	// (-3 represented as uint16 wraparound).
	got := diffForward([]uint64{10, 12, 9, 9}, 16, 0)
	want := []uint64{10, 2, 0xFFFD, 0} // -3 wrapped into 16 bits
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("residual[%d]: expected %#x, got %#x", i, want[i], got[i])
		}
	}
}

func TestDiffRoundTrip(t *testing.T) {
	orig := []uint64{10, 12, 9, 9, 65000, 1, 0}
	residuals := diffForward(orig, 16, 0)
	got := diffInverse(residuals, 16, 0)
	for i := range orig {
		if got[i] != orig[i] {
			t.Errorf("round-trip[%d]: expected %d, got %d", i, orig[i], got[i])
		}
	}
}

func TestDiffRoundTripWithRounding(t *testing.T) {
	orig := []uint64{1000, 1002, 998, 999}
	residuals := diffForward(orig, 16, 2)
	got := diffInverse(residuals, 16, 2)
	for i := range orig {
		want := (orig[i] >> 2) << 2
		if got[i] != want {
			t.Errorf("round-trip[%d]: expected %d (rounded), got %d", i, want, got[i])
		}
	}
}

func TestCalUpModelWeightExtremes(t *testing.T) {
	// w=0: model unchanged regardless of observation.
	if got := CalUpModel(999, 42, 0, 32); got != 42 {
		t.Errorf("w=0: expected prior model 42 unchanged, got %d", got)
	}
	// w=MaxModelValue: model becomes the observation.
	if got := CalUpModel(99, 42, MaxModelValue, 32); got != 99 {
		t.Errorf("w=max: expected observation 99, got %d", got)
	}
}

func TestModelForwardMatchesWorkedExample(t *testing.T) {
	// scenario 2: input=[100], model=[95], model_value=8 -> residual=5, mapped=10.
	residual, _ := ModelForwardSample(100, 95, 32, 0, 8)
	if residual != 5 {
		t.Fatalf("expected residual 5, got %d", residual)
	}
}

func TestModelRoundTrip(t *testing.T) {
	orig := []uint64{100, 110, 90, 105}
	model := []uint64{95, 98, 102, 91}

	residuals := make([]uint64, len(orig))
	updated := make([]uint64, len(orig))
	for i := range orig {
		residuals[i], updated[i] = ModelForwardSample(orig[i], model[i], 32, 0, 8)
	}

	got := make([]uint64, len(orig))
	updated2 := make([]uint64, len(orig))
	for i := range residuals {
		got[i], updated2[i] = ModelInverseSample(residuals[i], model[i], 32, 0, 8)
	}

	for i := range orig {
		if got[i] != orig[i] {
			t.Errorf("round-trip[%d]: expected %d, got %d", i, orig[i], got[i])
		}
		if updated[i] != updated2[i] {
			t.Errorf("updated model[%d] mismatch between forward and inverse: %d vs %d", i, updated[i], updated2[i])
		}
	}
}
