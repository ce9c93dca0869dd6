package freq

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		f    Hertz
		want string
	}{
		{0, "0 Hz"},
		{999, "999 Hz"},
		{32_768, "32.768 kHz"},
		{1 * KHz, "1 kHz"},
		{48 * MHz, "48 MHz"},
		{120 * MHz, "120 MHz"},
		{48_005_120, "48.005 MHz"},
		{1_500_000, "1.5 MHz"},
		{1_000_001, "1 MHz"},
	}

	for _, test := range tests {
		if got := test.f.String(); got != test.want {
			t.Errorf("%d: got %q, want %q", uint32(test.f), got, test.want)
		}
	}
}

func TestArithmetic(t *testing.T) {
	if got := Div(48*MHz, uint8(4)); got != 12*MHz {
		t.Errorf("Div = %d", got)
	}
	if got := Div(48*MHz, uint32(0)); got != 0 {
		t.Errorf("Div by zero = %d", got)
	}
	if got := Mul(32_768*Hz, uint16(1465)); got != 48_005_120 {
		t.Errorf("Mul = %d", got)
	}
	if got := Mul(200*MHz, uint32(100)); got != ^Hertz(0) {
		t.Errorf("Mul did not saturate: %d", got)
	}
	if !(48 * MHz).Within(32*KHz, 200*MHz) || (4 * MHz).Within(32*KHz, 3_200*KHz) {
		t.Errorf("Within")
	}
}
