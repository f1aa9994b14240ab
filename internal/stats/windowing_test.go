package stats

import (
	"testing"
	"time"
)

func TestSnapToStart(t *testing.T) {
	wednesday := time.Date(2025, 8, 20, 14, 30, 0, 0, time.UTC)
	sunday := time.Date(2025, 8, 24, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    time.Time
		bucket   string
		expected time.Time
	}{
		{"Day", wednesday, "day", time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)},
		{"WeekFromWednesday", wednesday, "week", time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC)},
		{"WeekFromSunday", sunday, "week", time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC)},
		{"Month", wednesday, "month", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		{"UnknownBucketDefaultsToDay", wednesday, "", time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnapToStart(tt.input, tt.bucket); !got.Equal(tt.expected) {
				t.Errorf("SnapToStart() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSubdivide(t *testing.T) {
	from := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 7, 2, 0, 0, 0, time.UTC)

	days := Subdivide(from, to, "day")
	if len(days) != 4 {
		t.Fatalf("got %d day buckets, want 4", len(days))
	}
	if !days[0].Equal(time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first bucket = %v, want 2025-03-04", days[0])
	}

	months := Subdivide(
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		"month",
	)
	if len(months) != 4 {
		t.Errorf("got %d month buckets, want 4", len(months))
	}

	if got := Subdivide(to, from, "day"); got != nil {
		t.Errorf("reversed range should yield nil, got %v", got)
	}
}

func TestBucketLabelRoundTrip(t *testing.T) {
	tests := []struct {
		bucket string
		start  time.Time
		label  string
	}{
		{"day", time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), "2025-03-04"},
		{"week", time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC), "2025-08-18"},
		{"month", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "2025-03"},
	}

	for _, tt := range tests {
		t.Run(tt.bucket, func(t *testing.T) {
			label := BucketLabel(tt.start, tt.bucket)
			if label != tt.label {
				t.Fatalf("BucketLabel() = %q, want %q", label, tt.label)
			}
			parsed, ok := ParseBucketLabel(label, tt.bucket)
			if !ok || !parsed.Equal(tt.start) {
				t.Errorf("ParseBucketLabel(%q) = (%v, %v), want (%v, true)", label, parsed, ok, tt.start)
			}
		})
	}
}
