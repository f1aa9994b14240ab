package stats

// ScrapRate returns the percentage of checked units classified suspect.
// A zero denominator is a defined 0% result, never an error; callers that
// must distinguish "no data" from a true 0% check the volume themselves.
func ScrapRate(checked, suspect int64) float64 {
	if checked <= 0 {
		return 0
	}
	return 100 * float64(suspect) / float64(checked)
}

// QualityRate is the complement of ScrapRate, with the same zero policy.
func QualityRate(checked, suspect int64) float64 {
	return 100 - ScrapRate(checked, suspect)
}

// OEE multiplies the availability, performance and quality fractions.
// A missing factor counts as 1.0: "not measured, assume no loss". Defaulting
// to 0 instead would manufacture a false zero OEE from incomplete input.
func OEE(availability, performance, quality *float64) float64 {
	oee := 1.0
	for _, f := range []*float64{availability, performance, quality} {
		if f != nil {
			oee *= *f
		}
	}
	return oee
}

// Band is the color-coding classification of a scrap rate.
type Band string

const (
	BandNoData Band = "none"
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
)

// Thresholds are the fixed band boundaries for scrap-rate classification,
// in percent.
type Thresholds struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
}

// Classify maps a scrap rate to its band. A bucket without volume is
// BandNoData regardless of the (necessarily zero) rate, so empty buckets
// are never presented as 0% scrap.
func (t Thresholds) Classify(rate float64, hasData bool) Band {
	switch {
	case !hasData:
		return BandNoData
	case rate <= t.Low:
		return BandLow
	case rate <= t.Medium:
		return BandMedium
	default:
		return BandHigh
	}
}
