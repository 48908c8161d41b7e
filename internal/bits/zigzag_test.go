package bits

import (
	"testing"
)

func TestMapToPosInv(t *testing.T) {
	golden := []struct {
		u    uint64
		n    uint
		want uint64
	}{
		{u: 0, n: 32, want: 0},
		{u: 1, n: 32, want: 0xFFFFFFFF}, // -1 wrapped into 32 bits
		{u: 2, n: 32, want: 1},
		{u: 3, n: 32, want: 0xFFFFFFFE}, // -2 wrapped into 32 bits
		{u: 4, n: 32, want: 2},
		{u: 5, n: 32, want: 0xFFFFFFFD}, // -3 wrapped into 32 bits
		{u: 6, n: 32, want: 3},
		{u: 1, n: 8, want: 0xFF},
		{u: 3, n: 8, want: 0xFE},
	}
	for _, g := range golden {
		got := MapToPosInv(g.u, g.n)
		if g.want != got {
			t.Errorf("result mismatch of MapToPosInv(u=%d, n=%d); expected %#x, got %#x", g.u, g.n, g.want, got)
			continue
		}
	}
}

func TestMapToPos(t *testing.T) {
	golden := []struct {
		r    uint64
		n    uint
		want uint64
	}{
		{r: 0, n: 32, want: 0},
		{r: 0xFFFFFFFF, n: 32, want: 1}, // -1
		{r: 1, n: 32, want: 2},
		{r: 0xFFFFFFFE, n: 32, want: 3}, // -2
		{r: 2, n: 32, want: 4},
		{r: 0xFFFFFFFD, n: 32, want: 5}, // -3
		{r: 3, n: 32, want: 6},
		{r: 0xFF, n: 8, want: 1},
		{r: 0xFE, n: 8, want: 3},
	}
	for _, g := range golden {
		got := MapToPos(g.r, g.n)
		if g.want != got {
			t.Errorf("result mismatch of MapToPos(r=%#x, n=%d); expected %d, got %d", g.r, g.n, g.want, got)
			continue
		}
	}
}

func TestMapToPosRoundTrip(t *testing.T) {
	for _, n := range []uint{8, 16, 32} {
		mask := uint64(1)<<n - 1
		for r := uint64(0); r <= mask && r < 1<<16; r++ {
			u := MapToPos(r, n)
			got := MapToPosInv(u, n)
			if got != r {
				t.Fatalf("round-trip mismatch at n=%d, r=%#x: MapToPosInv(MapToPos(r))=%#x", n, r, got)
			}
		}
	}
}
