package config

import (
	"os"
	"path/filepath"
	"testing"

	"scrapboard/internal/stats"
)

func writeOptions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOptionsApply(t *testing.T) {
	path := writeOptions(t, `{
		"field_alias_map": {"machine": ["Echipament", "Machine"]},
		"rate_thresholds": {"low": 1, "medium": 3},
		"leaderboard_cap": 5,
		"time_gap_policy": "zero-fill",
		"bucket": "week",
		"skip_sheets": ["Legend"]
	}`)

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatal(err)
	}

	cfg := &AppConfig{Engine: stats.DefaultConfig(), SkipSheets: DefaultSkipSheets}
	opts.Apply(cfg)

	if got := cfg.Engine.Aliases[stats.FieldMachine]; len(got) != 2 || got[0] != "Echipament" {
		t.Errorf("machine aliases = %v, want [Echipament Machine]", got)
	}
	if cfg.Engine.Thresholds.Low != 1 || cfg.Engine.Thresholds.Medium != 3 {
		t.Errorf("thresholds = %+v, want {1 3}", cfg.Engine.Thresholds)
	}
	if cfg.Engine.LeaderboardCap != 5 {
		t.Errorf("cap = %d, want 5", cfg.Engine.LeaderboardCap)
	}
	if cfg.Engine.GapPolicy != stats.GapZeroFill {
		t.Errorf("gap policy = %v, want zero-fill", cfg.Engine.GapPolicy)
	}
	if cfg.Engine.Bucket != "week" {
		t.Errorf("bucket = %v, want week", cfg.Engine.Bucket)
	}
	if len(cfg.SkipSheets) != 1 || cfg.SkipSheets[0] != "Legend" {
		t.Errorf("skip sheets = %v, want [Legend]", cfg.SkipSheets)
	}
}

func TestLoadOptionsPartialKeepsDefaults(t *testing.T) {
	path := writeOptions(t, `{"leaderboard_cap": 10}`)

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatal(err)
	}

	cfg := &AppConfig{Engine: stats.DefaultConfig(), SkipSheets: DefaultSkipSheets}
	opts.Apply(cfg)

	if cfg.Engine.LeaderboardCap != 10 {
		t.Errorf("cap = %d, want 10", cfg.Engine.LeaderboardCap)
	}
	if cfg.Engine.Thresholds.Low != 2 || cfg.Engine.Thresholds.Medium != 5 {
		t.Errorf("thresholds = %+v, want defaults {2 5}", cfg.Engine.Thresholds)
	}
	if cfg.Engine.GapPolicy != stats.GapOmit {
		t.Errorf("gap policy = %v, want default omit", cfg.Engine.GapPolicy)
	}
	if len(cfg.SkipSheets) != 1 || cfg.SkipSheets[0] != "Drop Down List" {
		t.Errorf("skip sheets = %v, want default", cfg.SkipSheets)
	}
}

func TestLoadOptionsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"BadGapPolicy", `{"time_gap_policy": "interpolate"}`},
		{"BadBucket", `{"bucket": "quarter"}`},
		{"ThresholdsInverted", `{"rate_thresholds": {"low": 5, "medium": 2}}`},
		{"NegativeLow", `{"rate_thresholds": {"low": -1, "medium": 2}}`},
		{"NotJSON", `leaderboard_cap = 5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeOptions(t, tt.content)
			if _, err := LoadOptions(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
