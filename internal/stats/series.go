package stats

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// TimePoint is one period of the trend series.
type TimePoint struct {
	Period      string  `json:"period"`
	ScrapRate   float64 `json:"scrap_rate"`
	QualityRate float64 `json:"quality_rate"`
	Volume      int64   `json:"volume"`

	// NoData marks periods with zero checked volume, so the renderer can
	// show them as gaps instead of perfect 0% days.
	NoData bool `json:"no_data,omitempty"`
}

// BuildTimeSeries turns the time-dimension buckets into an ascending series.
// Under GapZeroFill, periods between the first and last observation that saw
// no records become explicit zero-volume points; under GapOmit they are left
// out entirely.
func BuildTimeSeries(byTime []Bucket, cfg Config) []TimePoint {
	if len(byTime) == 0 {
		return nil
	}

	buckets := slices.Clone(byTime)
	// Bucket labels are built to sort lexicographically in chronological
	// order, so sorting by key sorts by period.
	slices.SortFunc(buckets, func(a, b Bucket) int {
		return cmp.Compare(a.Key, b.Key)
	})

	points := lo.Map(buckets, func(b Bucket, _ int) TimePoint {
		return TimePoint{
			Period:      b.Key,
			ScrapRate:   b.ScrapRate(),
			QualityRate: b.QualityRate(),
			Volume:      b.TotalChecked,
			NoData:      !b.HasData(),
		}
	})

	if cfg.GapPolicy != GapZeroFill {
		return points
	}
	return zeroFill(points, cfg.Bucket)
}

func zeroFill(points []TimePoint, bucket string) []TimePoint {
	first, okFirst := ParseBucketLabel(points[0].Period, bucket)
	last, okLast := ParseBucketLabel(points[len(points)-1].Period, bucket)
	if !okFirst || !okLast {
		return points
	}

	observed := make(map[string]TimePoint, len(points))
	for _, p := range points {
		observed[p.Period] = p
	}

	var filled []TimePoint
	for _, start := range Subdivide(first, last, bucket) {
		label := BucketLabel(start, bucket)
		if p, ok := observed[label]; ok {
			filled = append(filled, p)
			continue
		}
		filled = append(filled, TimePoint{
			Period:      label,
			QualityRate: 100,
			NoData:      true,
		})
	}
	return filled
}
