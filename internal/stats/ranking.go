package stats

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// OtherKey labels the implicit bucket that aggregates everything past the
// leaderboard cap. Its counts still show up in the summary scalars, which
// come from the global bucket.
const OtherKey = "Other"

// Rank orders buckets for a leaderboard: scrap rate descending, ties by
// total checked descending, then by key ascending. The tie-break chain keeps
// the order reproducible across runs on identical input.
func Rank(buckets []Bucket) []Bucket {
	ranked := slices.Clone(buckets)
	slices.SortStableFunc(ranked, func(a, b Bucket) int {
		if c := cmp.Compare(b.ScrapRate(), a.ScrapRate()); c != 0 {
			return c
		}
		if c := cmp.Compare(b.TotalChecked, a.TotalChecked); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return ranked
}

// CapWithOther truncates a ranked list to n entries and folds the excluded
// tail into a trailing OtherKey bucket. n <= 0 disables the cap.
func CapWithOther(ranked []Bucket, n int) []Bucket {
	if n <= 0 || len(ranked) <= n {
		return ranked
	}

	tail := ranked[n:]
	other := Bucket{
		Key:          OtherKey,
		TotalChecked: lo.SumBy(tail, func(b Bucket) int64 { return b.TotalChecked }),
		TotalSuspect: lo.SumBy(tail, func(b Bucket) int64 { return b.TotalSuspect }),
		Records:      lo.SumBy(tail, func(b Bucket) int { return b.Records }),
	}

	return append(slices.Clone(ranked[:n]), other)
}
