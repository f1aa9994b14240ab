package stats

import (
	"errors"

	"github.com/samber/lo"
)

// ErrEmptyInput signals that extraction yielded zero usable records. The
// model cannot compute meaningful rates, so the run reports this instead of
// emitting a misleading all-zero dashboard.
var ErrEmptyInput = errors.New("no usable records after extraction")

// Entry is one row of a ranked leaderboard.
type Entry struct {
	Key          string  `json:"key"`
	TotalChecked int64   `json:"total_checked"`
	TotalSuspect int64   `json:"total_suspect"`
	Records      int     `json:"records"`
	ScrapRate    float64 `json:"scrap_rate"`
	Band         Band    `json:"band"`
}

// Summary holds the run-wide scalars. They are computed from the global
// bucket: averaging per-bucket rates would weight a 10-part machine the same
// as a 10000-part one and is deliberately never done.
type Summary struct {
	Records      int     `json:"records"`
	TotalChecked int64   `json:"total_checked"`
	TotalSuspect int64   `json:"total_suspect"`
	TotalOK      int64   `json:"total_ok"`
	ScrapRate    float64 `json:"scrap_rate"`
	QualityRate  float64 `json:"quality_rate"`
	Band         Band    `json:"band"`

	// OEE is the volume-weighted mean over records carrying production
	// fractions; nil when no record did.
	OEE *float64 `json:"oee,omitempty"`

	FirstPeriod string `json:"first_period,omitempty"`
	LastPeriod  string `json:"last_period,omitempty"`
}

// MetricsModel is the immutable output contract of the aggregation engine:
// everything the renderer needs, nothing pointing back at the raw input.
type MetricsModel struct {
	Summary     Summary     `json:"summary"`
	Trend       []TimePoint `json:"trend"`
	Machines    []Entry     `json:"machines"`
	Inspectors  []Entry     `json:"inspectors"`
	Parts       []Entry     `json:"parts"`
	Categories  []Entry     `json:"categories"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// BuildModel groups the extracted records along every dimension and
// assembles the final metrics model. It is a pure function of
// (records, diagnostics, configuration).
func BuildModel(records []QualityRecord, diags Diagnostics, cfg Config) (*MetricsModel, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	grouped := GroupAll(records, cfg)
	trend := BuildTimeSeries(grouped.ByTime, cfg)

	model := &MetricsModel{
		Summary:     buildSummary(grouped.Global, records, trend, cfg),
		Trend:       trend,
		Machines:    toEntries(grouped.ByMachine, cfg),
		Inspectors:  toEntries(grouped.ByInspector, cfg),
		Parts:       toEntries(grouped.ByPart, cfg),
		Categories:  toEntries(grouped.ByCategory, cfg),
		Diagnostics: diags,
	}
	return model, nil
}

func buildSummary(global Bucket, records []QualityRecord, trend []TimePoint, cfg Config) Summary {
	s := Summary{
		Records:      global.Records,
		TotalChecked: global.TotalChecked,
		TotalSuspect: global.TotalSuspect,
		TotalOK:      global.TotalChecked - global.TotalSuspect,
		ScrapRate:    global.ScrapRate(),
		QualityRate:  global.QualityRate(),
		Band:         cfg.Thresholds.Classify(global.ScrapRate(), global.HasData()),
	}

	if len(trend) > 0 {
		s.FirstPeriod = trend[0].Period
		s.LastPeriod = trend[len(trend)-1].Period
	}

	var weighted float64
	var volume int64
	for _, rec := range records {
		if rec.OEE == nil || rec.QuantityChecked == 0 {
			continue
		}
		weighted += *rec.OEE * float64(rec.QuantityChecked)
		volume += rec.QuantityChecked
	}
	if volume > 0 {
		oee := weighted / float64(volume)
		s.OEE = &oee
	}

	return s
}

func toEntries(buckets []Bucket, cfg Config) []Entry {
	capped := CapWithOther(Rank(buckets), cfg.LeaderboardCap)
	return lo.Map(capped, func(b Bucket, _ int) Entry {
		return Entry{
			Key:          b.Key,
			TotalChecked: b.TotalChecked,
			TotalSuspect: b.TotalSuspect,
			Records:      b.Records,
			ScrapRate:    b.ScrapRate(),
			Band:         cfg.Thresholds.Classify(b.ScrapRate(), b.HasData()),
		}
	})
}
