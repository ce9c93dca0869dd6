package targets

import (
	"errors"
	"testing"

	"omibyte.io/samclock/freq"
)

func TestFind(t *testing.T) {
	tests := []struct {
		chip   string
		series string
	}{
		{"atsamd51j19a", "samd51"},
		{"ATSAMD51G19A", "samd51"},
		{"atsame51j20a", "same51"},
		{"atsame54p20a", "same54"},
	}

	for _, test := range tests {
		target, err := All().FindByChip(test.chip)
		if err != nil {
			t.Errorf("FindByChip(%q): %v", test.chip, err)
			continue
		}
		if target.Series != test.series {
			t.Errorf("FindByChip(%q) = %s, want %s", test.chip, target.Series, test.series)
		}
		if target.MaxCPUFreq != 120*freq.MHz {
			t.Errorf("%s: MaxCPUFreq = %v", test.chip, target.MaxCPUFreq)
		}
		if !target.HasGenerator(11) || target.HasGenerator(12) {
			t.Errorf("%s: %d generators", test.chip, target.Generators)
		}
	}

	if _, err := All().FindByChip("atsamd21g18a"); !errors.Is(err, ErrChipNotFound) {
		t.Errorf("FindByChip(atsamd21g18a) = %v, want ErrChipNotFound", err)
	}
	if _, err := All().FindBySeries("SAME53"); err != nil {
		t.Errorf("FindBySeries(SAME53): %v", err)
	}
	if _, err := All().FindBySeries("samd21"); !errors.Is(err, ErrSeriesNotFound) {
		t.Errorf("FindBySeries(samd21) = %v, want ErrSeriesNotFound", err)
	}
}

func TestChips(t *testing.T) {
	chips := All().Chips()
	if len(chips) != 25 {
		t.Errorf("%d chips, want 25", len(chips))
	}
	for i := 1; i < len(chips); i++ {
		if chips[i-1] >= chips[i] {
			t.Errorf("chips not sorted at %d: %s, %s", i, chips[i-1], chips[i])
		}
	}
}
