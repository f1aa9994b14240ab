package stats

import (
	"fmt"
	"testing"
)

func TestRankOrdering(t *testing.T) {
	buckets := []Bucket{
		{Key: "low", TotalChecked: 100, TotalSuspect: 1},
		{Key: "high", TotalChecked: 100, TotalSuspect: 10},
		{Key: "mid", TotalChecked: 100, TotalSuspect: 5},
	}

	ranked := Rank(buckets)
	want := []string{"high", "mid", "low"}
	for i, key := range want {
		if ranked[i].Key != key {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Key, key)
		}
	}
}

func TestRankTieBreaks(t *testing.T) {
	// Equal scrap rate: higher volume first. Equal volume too: key ascending.
	buckets := []Bucket{
		{Key: "beta", TotalChecked: 100, TotalSuspect: 10},
		{Key: "alpha", TotalChecked: 100, TotalSuspect: 10},
		{Key: "bigger", TotalChecked: 200, TotalSuspect: 20},
	}

	ranked := Rank(buckets)
	want := []string{"bigger", "alpha", "beta"}
	for i, key := range want {
		if ranked[i].Key != key {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Key, key)
		}
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	buckets := []Bucket{
		{Key: "a", TotalChecked: 10, TotalSuspect: 0},
		{Key: "b", TotalChecked: 10, TotalSuspect: 5},
	}
	Rank(buckets)
	if buckets[0].Key != "a" {
		t.Error("Rank mutated its input")
	}
}

func TestCapWithOther(t *testing.T) {
	// 25 machines with distinct scrap rates; rank order is suspect count
	// descending, so the 5 lowest-rate machines fold into Other.
	var buckets []Bucket
	for i := 1; i <= 25; i++ {
		buckets = append(buckets, Bucket{
			Key:          fmt.Sprintf("M%02d", i),
			TotalChecked: 100,
			TotalSuspect: int64(i),
			Records:      1,
		})
	}

	capped := CapWithOther(Rank(buckets), 20)
	if len(capped) != 21 {
		t.Fatalf("got %d entries, want 21 (20 explicit + Other)", len(capped))
	}

	other := capped[20]
	if other.Key != OtherKey {
		t.Fatalf("last entry key = %q, want %q", other.Key, OtherKey)
	}
	// Excluded tail: machines with suspect counts 1..5.
	if other.TotalChecked != 500 || other.TotalSuspect != 15 || other.Records != 5 {
		t.Errorf("Other = %+v, want checked 500, suspect 15, records 5", other)
	}
}

func TestCapWithOtherNoTruncation(t *testing.T) {
	buckets := []Bucket{{Key: "a"}, {Key: "b"}}
	if got := CapWithOther(buckets, 20); len(got) != 2 {
		t.Errorf("got %d entries, want 2 (no Other bucket under the cap)", len(got))
	}
	if got := CapWithOther(buckets, 0); len(got) != 2 {
		t.Errorf("cap 0 should disable truncation, got %d entries", len(got))
	}
}
