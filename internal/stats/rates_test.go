package stats

import (
	"math"
	"testing"
)

func TestScrapRateZeroDenominator(t *testing.T) {
	if got := ScrapRate(0, 0); got != 0 {
		t.Errorf("ScrapRate(0, 0) = %v, want 0", got)
	}
	if got := QualityRate(0, 0); got != 100 {
		t.Errorf("QualityRate(0, 0) = %v, want 100", got)
	}
}

func TestRatesComplement(t *testing.T) {
	pairs := []struct {
		checked int64
		suspect int64
	}{
		{0, 0},
		{1, 0},
		{1, 1},
		{100, 5},
		{150, 5},
		{3, 1},
		{7919, 4211},
	}

	for _, p := range pairs {
		sum := ScrapRate(p.checked, p.suspect) + QualityRate(p.checked, p.suspect)
		if math.Abs(sum-100) > 1e-9 {
			t.Errorf("ScrapRate+QualityRate for (%d, %d) = %v, want 100", p.checked, p.suspect, sum)
		}
	}
}

func TestOEE(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name                              string
		availability, performance, quality *float64
		expected                          float64
	}{
		{"AllMissing", nil, nil, nil, 1.0},
		{"AllPresent", f(0.9), f(0.95), f(0.99), 0.9 * 0.95 * 0.99},
		{"MissingDefaultsToOne", f(0.5), nil, nil, 0.5},
		{"ZeroFactor", f(0), f(1), f(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OEE(tt.availability, tt.performance, tt.quality)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("OEE() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	thresholds := Thresholds{Low: 2, Medium: 5}

	tests := []struct {
		name     string
		rate     float64
		hasData  bool
		expected Band
	}{
		{"NoData", 0, false, BandNoData},
		{"Zero", 0, true, BandLow},
		{"LowBoundary", 2, true, BandLow},
		{"JustAboveLow", 2.01, true, BandMedium},
		{"MediumBoundary", 5, true, BandMedium},
		{"High", 5.01, true, BandHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := thresholds.Classify(tt.rate, tt.hasData); got != tt.expected {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.rate, tt.hasData, got, tt.expected)
			}
		})
	}
}
