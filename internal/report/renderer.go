package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"math"
	"time"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"scrapboard/internal/stats"
)

// chartSeries is one labelled numeric series handed to Chart.js.
type chartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// payload is the JSON contract between the Go side and the inline dashboard
// script. Everything the charts need, pre-ranked and pre-capped.
type payload struct {
	Trend struct {
		Labels     []string  `json:"labels"`
		ScrapRates []float64 `json:"scrapRates"`
		Volumes    []int64   `json:"volumes"`
	} `json:"trend"`
	Machines   chartSeries `json:"machines"`
	Inspectors chartSeries `json:"inspectors"`
	Categories chartSeries `json:"categories"`
	OKParts    int64       `json:"okParts"`
	NOKParts   int64       `json:"nokParts"`
}

// chartEntryLimit bounds how many bars a single chart draws. Tables still
// show the full capped leaderboards.
const chartEntryLimit = 10

type templateData struct {
	SourceName  string
	GeneratedAt string
	PeriodRange string
	Model       *stats.MetricsModel
	Script      template.JS
}

// Render builds the self-contained HTML dashboard for a metrics model. The
// inline script (static chart code plus the marshalled payload) is minified
// with esbuild before embedding.
func Render(model *stats.MetricsModel, sourceName string, now time.Time) ([]byte, error) {
	p := buildPayload(model)
	encoded, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode chart payload: %w", err)
	}

	script := fmt.Sprintf("const model = %s;\n%s", encoded, dashboardScript)

	data := templateData{
		SourceName:  sourceName,
		GeneratedAt: now.Format("January 2, 2006 at 3:04 PM"),
		PeriodRange: periodRange(model.Summary),
		Model:       model,
		Script:      template.JS(minifyScript(script)),
	}

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render dashboard: %w", err)
	}
	return buf.Bytes(), nil
}

func buildPayload(model *stats.MetricsModel) payload {
	var p payload
	for _, point := range model.Trend {
		p.Trend.Labels = append(p.Trend.Labels, point.Period)
		p.Trend.ScrapRates = append(p.Trend.ScrapRates, round2(point.ScrapRate))
		p.Trend.Volumes = append(p.Trend.Volumes, point.Volume)
	}

	p.Machines = toSeries(model.Machines)
	p.Inspectors = toSeries(model.Inspectors)

	// The category breakdown charts suspect counts, not rates.
	categories := chartEntries(model.Categories)
	p.Categories.Labels = lo.Map(categories, func(e stats.Entry, _ int) string { return e.Key })
	p.Categories.Values = lo.Map(categories, func(e stats.Entry, _ int) float64 { return float64(e.TotalSuspect) })

	p.OKParts = model.Summary.TotalOK
	p.NOKParts = model.Summary.TotalSuspect
	return p
}

// chartEntries drops the aggregated Other bucket and trims to the chart
// limit; charts compare real entities, the tables keep the full picture.
func chartEntries(entries []stats.Entry) []stats.Entry {
	kept := lo.Filter(entries, func(e stats.Entry, _ int) bool { return e.Key != stats.OtherKey })
	if len(kept) > chartEntryLimit {
		kept = kept[:chartEntryLimit]
	}
	return kept
}

func toSeries(entries []stats.Entry) chartSeries {
	kept := chartEntries(entries)
	return chartSeries{
		Labels: lo.Map(kept, func(e stats.Entry, _ int) string { return e.Key }),
		Values: lo.Map(kept, func(e stats.Entry, _ int) float64 { return round2(e.ScrapRate) }),
	}
}

func minifyScript(src string) string {
	result := api.Transform(src, api.TransformOptions{
		Loader:           api.LoaderJS,
		MinifyWhitespace: true,
		MinifySyntax:     true,
	})
	if len(result.Errors) > 0 {
		log.Warn().Str("error", result.Errors[0].Text).Msg("Dashboard script minification failed, embedding unminified")
		return src
	}
	return string(result.Code)
}

func periodRange(s stats.Summary) string {
	if s.FirstPeriod == "" {
		return "Unknown"
	}
	return fmt.Sprintf("%s to %s", s.FirstPeriod, s.LastPeriod)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
