package gclk

import (
	"testing"

	"omibyte.io/samclock/freq"
)

func TestDivFactor(t *testing.T) {
	tests := []struct {
		gen  int
		div  Div
		want uint32
	}{
		{0, DivBy(0), 1},
		{0, DivBy(1), 1},
		{2, DivBy(4), 4},
		{3, DivBy(255), 255},
		{3, DivBy(256), 255},
		{3, DivBy(65535), 255},
		{1, DivBy(256), 256},
		{1, DivBy(65535), 65535},
		{1, DivBy(70000), 65535},
		{2, DivPow2(0), 2},
		{2, DivPow2(3), 16},
		{2, DivPow2(8), 512},
		{2, DivPow2(9), 512},
		{1, DivPow2(9), 1024},
		{1, DivPow2(16), 131072},
		{1, DivPow2(17), 131072},
		{0, DivMax(), 512},
		{11, DivMax(), 512},
		{1, DivMax(), 131072},
	}

	for _, test := range tests {
		if got := DivFactor(test.gen, test.div); got != test.want {
			value, pow2 := test.div.Raw()
			t.Errorf("GCLK%d, div (%d, %v): got %d, want %d", test.gen, value, pow2, got, test.want)
		}
	}
}

func TestEncodeDiv(t *testing.T) {
	tests := []struct {
		gen        int
		div        Div
		wantField  uint16
		wantDivsel bool
	}{
		{1, DivBy(65535), 65535, false},
		{3, DivBy(65535), 255, false},
		{5, DivPow2(2), 2, true},
		{1, DivMax(), 16, true},
		{4, DivMax(), 8, true},
	}

	for _, test := range tests {
		field, divsel := EncodeDiv(test.gen, test.div)
		if field != test.wantField || divsel != test.wantDivsel {
			t.Errorf("GCLK%d: got (%d, %v), want (%d, %v)", test.gen, field, divsel, test.wantField, test.wantDivsel)
		}
	}
}

func TestFrequency(t *testing.T) {
	for gen := 0; gen < 12; gen++ {
		for _, n := range []uint32{0, 1, 2, 3, 7, 48, 255, 256, 1000} {
			src := 48 * freq.MHz
			want := src / freq.Hertz(DivFactor(gen, DivBy(n)))
			if got := Frequency(src, gen, DivBy(n)); got != want {
				t.Errorf("GCLK%d / %d: got %d, want %d", gen, n, got, want)
			}
		}
		for n := uint32(0); n <= 17; n++ {
			src := 120 * freq.MHz
			bits := uint32(DivBits(gen))
			exp := n
			if exp > bits {
				exp = bits
			}
			want := src >> (exp + 1)
			if got := Frequency(src, gen, DivPow2(n)); got != want {
				t.Errorf("GCLK%d / 2^(%d+1): got %d, want %d", gen, n, got, want)
			}
		}
	}

	if got := Frequency(48*freq.MHz, 2, DivBy(4)); got != 12*freq.MHz {
		t.Errorf("48 MHz / 4 = %d", got)
	}
}
