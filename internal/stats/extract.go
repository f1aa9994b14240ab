package stats

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"scrapboard/internal/ingest"
)

// QualityRecord is one normalized inspection record. Created once by the
// extractor, immutable thereafter.
type QualityRecord struct {
	Timestamp       *time.Time
	Inspector       string
	Machine         string
	PartID          string
	Category        string
	QuantityChecked int64
	SuspectCount    int64
	Observation     string

	// OEE is only set when the row carried at least one of the
	// availability/performance/quality production fractions.
	OEE *float64
}

// Diagnostics counts the per-row issues absorbed during extraction. They are
// carried into the final model so nothing is swallowed silently.
type Diagnostics struct {
	RowsIn        int `json:"rows_in"`
	RowsDropped   int `json:"rows_dropped"`
	UnparsedDates int `json:"unparsed_dates"`
	ClampedFields int `json:"clamped_fields"`
}

// partPattern matches the part-number shapes found across the workbooks,
// e.g. R900305231, F-688038.02-0411.WH.WE36, 0510-1234-02.
var partPattern = regexp.MustCompile(`[A-Z]\d{9}|[A-Z]-\d{6}\.\d{2}-\d{4}\.[A-Z]{2}\.[A-Z]{2}\d{0,2}|\d{4}-\d{4}-\d{2}`)

// Extractor normalizes raw rows into QualityRecords.
type Extractor struct {
	cfg Config
}

// NewExtractor creates an extractor bound to one configuration.
func NewExtractor(cfg Config) *Extractor {
	if cfg.Aliases == nil {
		cfg.Aliases = DefaultAliases()
	}
	return &Extractor{cfg: cfg}
}

// Extract normalizes a sequence of raw rows. Rows that resolve no
// identifying field at all are dropped and counted; every other per-row
// issue is absorbed into the record plus a diagnostic counter.
func (e *Extractor) Extract(rows []ingest.RawRow) ([]QualityRecord, Diagnostics) {
	var records []QualityRecord
	diags := Diagnostics{RowsIn: len(rows)}

	for _, row := range rows {
		rec, ok := e.extractRow(row, &diags)
		if !ok {
			diags.RowsDropped++
			log.Debug().Interface("row", row).Msg("Row dropped: no identifying field resolved")
			continue
		}
		records = append(records, rec)
	}

	log.Info().
		Int("rows", diags.RowsIn).
		Int("records", len(records)).
		Int("dropped", diags.RowsDropped).
		Int("unparsedDates", diags.UnparsedDates).
		Int("clamped", diags.ClampedFields).
		Msg("Extraction finished")

	return records, diags
}

func (e *Extractor) extractRow(row ingest.RawRow, diags *Diagnostics) (QualityRecord, bool) {
	rec := QualityRecord{
		Inspector:   e.resolveString(row, FieldInspector),
		Machine:     e.resolveString(row, FieldMachine),
		Category:    cast.ToString(row[ingest.SheetKey]),
		Observation: e.resolveString(row, FieldObservation),
	}

	// 1. Date: unparsable dates keep the record but exclude it from the
	// time dimension.
	dateRaw, dateFound := e.resolve(row, FieldDate)
	if dateFound {
		if t, ok := ParseDate(dateRaw); ok {
			rec.Timestamp = &t
		} else {
			diags.UnparsedDates++
		}
	}

	// 2. Quantities: absent or malformed cells resolve to 0, negatives are
	// clamped, and suspects can never exceed the checked volume.
	rec.QuantityChecked = e.resolveCount(row, FieldChecked, diags)
	rec.SuspectCount = e.resolveCount(row, FieldSuspect, diags)
	if rec.SuspectCount > rec.QuantityChecked {
		rec.SuspectCount = rec.QuantityChecked
		diags.ClampedFields++
	}

	// 3. Part number: explicit column first, then pattern harvesting across
	// the remaining string cells.
	rec.PartID = e.resolveString(row, FieldPart)
	if rec.PartID == "" {
		rec.PartID = harvestPartID(row)
	}

	// 4. Optional production fractions for OEE.
	availability := e.resolveFraction(row, FieldAvailability)
	performance := e.resolveFraction(row, FieldPerformance)
	quality := e.resolveFraction(row, FieldQuality)
	if availability != nil || performance != nil || quality != nil {
		oee := OEE(availability, performance, quality)
		rec.OEE = &oee
	}

	identified := rec.Machine != "" || rec.Inspector != "" || rec.PartID != "" ||
		rec.Timestamp != nil || rec.QuantityChecked > 0 || rec.SuspectCount > 0
	return rec, identified
}

// resolve returns the first declared alias present in the row,
// case-insensitively. Declared alias-list order wins over row column order;
// when several distinct row keys fold to the same alias, the
// lexicographically smallest key is used so resolution stays deterministic.
func (e *Extractor) resolve(row ingest.RawRow, field Field) (any, bool) {
	for _, alias := range e.cfg.Aliases[field] {
		var matched []string
		for key, val := range row {
			if val == nil {
				continue
			}
			if strings.EqualFold(strings.TrimSpace(key), alias) {
				matched = append(matched, key)
			}
		}
		if len(matched) == 0 {
			continue
		}
		slices.Sort(matched)
		return row[matched[0]], true
	}
	return nil, false
}

func (e *Extractor) resolveString(row ingest.RawRow, field Field) string {
	v, ok := e.resolve(row, field)
	if !ok {
		return ""
	}
	return strings.TrimSpace(cast.ToString(v))
}

// resolveCount coerces a quantity cell to a non-negative integer. Cells that
// are present but not numeric, and negative values, count as clamped fields.
func (e *Extractor) resolveCount(row ingest.RawRow, field Field, diags *Diagnostics) int64 {
	v, ok := e.resolve(row, field)
	if !ok {
		return 0
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		// Tolerate values like "1,250 pcs" before giving up.
		s := strings.ReplaceAll(cast.ToString(v), ",", "")
		if m := numberPattern.FindString(s); m != "" {
			f, err = cast.ToFloat64E(m)
		}
		if err != nil {
			diags.ClampedFields++
			return 0
		}
	}

	if f < 0 {
		diags.ClampedFields++
		return 0
	}
	return int64(f)
}

var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

// resolveFraction reads an optional [0,1] production factor. Percent-style
// values (> 1) are scaled down; anything unusable stays nil.
func (e *Extractor) resolveFraction(row ingest.RawRow, field Field) *float64 {
	v, ok := e.resolve(row, field)
	if !ok {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || f < 0 {
		return nil
	}
	if f > 1 {
		f /= 100
	}
	return &f
}

// harvestPartID scans every string cell for a known part-number shape and
// returns the lexicographically smallest match, keeping the choice stable
// across runs.
func harvestPartID(row ingest.RawRow) string {
	var parts []string
	for key, val := range row {
		if key == ingest.SheetKey {
			continue
		}
		s, ok := val.(string)
		if !ok {
			continue
		}
		parts = append(parts, partPattern.FindAllString(s, -1)...)
	}
	if len(parts) == 0 {
		return ""
	}
	slices.Sort(parts)
	return parts[0]
}
