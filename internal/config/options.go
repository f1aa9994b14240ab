package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/jsonschema-go/jsonschema"

	"scrapboard/internal/stats"
)

// Options is the JSON options-file surface. Every field is optional; absent
// fields keep their recognized defaults.
type Options struct {
	FieldAliasMap  map[string][]string `json:"field_alias_map,omitempty"`
	RateThresholds *stats.Thresholds   `json:"rate_thresholds,omitempty"`
	LeaderboardCap *int                `json:"leaderboard_cap,omitempty"`
	TimeGapPolicy  string              `json:"time_gap_policy,omitempty"`
	Bucket         string              `json:"bucket,omitempty"`
	SkipSheets     []string            `json:"skip_sheets,omitempty"`
}

// LoadOptions reads and validates a JSON options file. The raw document is
// checked against a schema derived from the Options type before decoding, so
// mistyped values surface as validation errors instead of zero values.
func LoadOptions(path string) (*Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read options file: %w", err)
	}

	schema, err := jsonschema.For[Options](nil)
	if err != nil {
		return nil, fmt.Errorf("derive options schema: %w", err)
	}
	resolved, err := schema.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolve options schema: %w", err)
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return nil, fmt.Errorf("parse options file: %w", err)
	}
	if err := resolved.Validate(instance); err != nil {
		return nil, fmt.Errorf("invalid options file: %w", err)
	}

	var opts Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, fmt.Errorf("decode options file: %w", err)
	}
	if err := opts.check(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// check enforces the semantic constraints the schema cannot express.
func (o *Options) check() error {
	if o.RateThresholds != nil {
		t := o.RateThresholds
		if t.Low < 0 || t.Medium < t.Low {
			return fmt.Errorf("invalid rate_thresholds: want 0 <= low <= medium, got low=%v medium=%v", t.Low, t.Medium)
		}
	}
	switch stats.GapPolicy(o.TimeGapPolicy) {
	case "", stats.GapOmit, stats.GapZeroFill:
	default:
		return fmt.Errorf("invalid time_gap_policy %q: want %q or %q", o.TimeGapPolicy, stats.GapOmit, stats.GapZeroFill)
	}
	switch o.Bucket {
	case "", "day", "week", "month":
	default:
		return fmt.Errorf("invalid bucket %q: want day, week or month", o.Bucket)
	}
	return nil
}

// Apply merges the options over an AppConfig.
func (o *Options) Apply(cfg *AppConfig) {
	for field, aliases := range o.FieldAliasMap {
		if len(aliases) > 0 {
			cfg.Engine.Aliases[stats.Field(field)] = aliases
		}
	}
	if o.RateThresholds != nil {
		cfg.Engine.Thresholds = *o.RateThresholds
	}
	if o.LeaderboardCap != nil {
		cfg.Engine.LeaderboardCap = *o.LeaderboardCap
	}
	if o.TimeGapPolicy != "" {
		cfg.Engine.GapPolicy = stats.GapPolicy(o.TimeGapPolicy)
	}
	if o.Bucket != "" {
		cfg.Engine.Bucket = o.Bucket
	}
	if o.SkipSheets != nil {
		cfg.SkipSheets = o.SkipSheets
	}
}
