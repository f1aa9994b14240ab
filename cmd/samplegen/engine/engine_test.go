package engine

import (
	"path/filepath"
	"reflect"
	"strconv"
	"testing"
	"time"

	"scrapboard/internal/ingest"
	"scrapboard/internal/stats"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := GeneratorConfig{
		Scenario: "clean",
		Days:     10,
		Rows:     50,
		Seed:     42,
		Now:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	first := Generate(cfg)
	second := Generate(cfg)
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed produced different rows")
	}
	if len(first) != 50 {
		t.Errorf("got %d rows, want 50", len(first))
	}
}

func TestGenerateCleanRowsAreWellFormed(t *testing.T) {
	rows := Generate(GeneratorConfig{
		Scenario: "clean",
		Days:     10,
		Rows:     100,
		Seed:     1,
		Now:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	for i, r := range rows {
		if _, err := time.Parse("02.01.2006", r.Date); err != nil {
			t.Fatalf("rows[%d].Date = %q: %v", i, r.Date, err)
		}
		checked, err := strconv.Atoi(r.Checked)
		if err != nil || checked <= 0 {
			t.Fatalf("rows[%d].Checked = %q", i, r.Checked)
		}
		suspect, err := strconv.Atoi(r.Suspect)
		if err != nil || suspect < 0 || suspect > checked {
			t.Fatalf("rows[%d].Suspect = %q (checked %d)", i, r.Suspect, checked)
		}
	}
}

// The generated CSV must survive the real ingest and extraction pipeline.
func TestGenerateRoundTrip(t *testing.T) {
	cfg := GeneratorConfig{
		Scenario: "clean",
		Days:     14,
		Rows:     40,
		Seed:     7,
		Now:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	path := filepath.Join(t.TempDir(), "sample.csv")

	if err := Save(path, Generate(cfg)); err != nil {
		t.Fatal(err)
	}

	raw, err := ingest.ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 40 {
		t.Fatalf("ingested %d rows, want 40", len(raw))
	}

	records, diags := stats.NewExtractor(stats.DefaultConfig()).Extract(raw)
	if len(records) != 40 || diags.RowsDropped != 0 {
		t.Fatalf("extracted %d records, %d dropped; want all 40 kept", len(records), diags.RowsDropped)
	}
	if diags.UnparsedDates != 0 || diags.ClampedFields != 0 {
		t.Errorf("clean scenario produced diagnostics %+v", diags)
	}

	model, err := stats.BuildModel(records, diags, stats.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if model.Summary.Records != 40 {
		t.Errorf("Summary.Records = %d, want 40", model.Summary.Records)
	}
	if len(model.Machines) == 0 || len(model.Trend) == 0 {
		t.Error("model missing machine leaderboard or trend")
	}
}

func TestGenerateNoisyInjectsDefects(t *testing.T) {
	rows := Generate(GeneratorConfig{
		Scenario: "noisy",
		Days:     14,
		Rows:     200,
		Seed:     3,
		Now:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	var badDates, negatives int
	for _, r := range rows {
		if _, err := time.Parse("02.01.2006", r.Date); err != nil {
			badDates++
		}
		if r.Suspect == "-3" {
			negatives++
		}
	}
	if badDates == 0 {
		t.Error("noisy scenario produced no malformed dates")
	}
	if negatives == 0 {
		t.Error("noisy scenario produced no negative counts")
	}
}
