package stats

import (
	"golang.org/x/sync/errgroup"
)

// Bucket accumulates the checked/suspect totals for one value of a grouping
// dimension. Rates are derived on read, never stored.
type Bucket struct {
	Key          string
	TotalChecked int64
	TotalSuspect int64
	Records      int
}

// ScrapRate is the bucket's suspect percentage, 0 when the bucket holds no
// volume.
func (b Bucket) ScrapRate() float64 { return ScrapRate(b.TotalChecked, b.TotalSuspect) }

// QualityRate is the complement of the bucket's scrap rate.
func (b Bucket) QualityRate() float64 { return QualityRate(b.TotalChecked, b.TotalSuspect) }

// HasData reports whether the bucket saw any checked volume. A bucket
// without volume renders as "no data", not as 0% scrap.
func (b Bucket) HasData() bool { return b.TotalChecked > 0 }

func (b *Bucket) add(rec QualityRecord) {
	b.TotalChecked += rec.QuantityChecked
	b.TotalSuspect += rec.SuspectCount
	b.Records++
}

// GroupBy buckets records in a single pass by the given key function.
// Records keyed to "" are excluded from the dimension. First-seen key order
// is preserved so unsorted output stays deterministic.
func GroupBy(records []QualityRecord, key func(QualityRecord) string) []Bucket {
	index := make(map[string]int)
	var buckets []Bucket

	for _, rec := range records {
		k := key(rec)
		if k == "" {
			continue
		}
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket{Key: k})
		}
		buckets[i].add(rec)
	}

	return buckets
}

// Grouped holds every dimension's buckets plus the global accumulator for
// one run.
type Grouped struct {
	Global      Bucket
	ByTime      []Bucket
	ByMachine   []Bucket
	ByInspector []Bucket
	ByPart      []Bucket
	ByCategory  []Bucket
}

// GroupAll computes all dimensions over the same immutable record slice.
// Each dimension only writes its own field, so they run concurrently.
func GroupAll(records []QualityRecord, cfg Config) Grouped {
	var grouped Grouped
	var g errgroup.Group

	g.Go(func() error {
		grouped.ByTime = GroupBy(records, func(r QualityRecord) string {
			if r.Timestamp == nil {
				return ""
			}
			return BucketLabel(SnapToStart(*r.Timestamp, cfg.Bucket), cfg.Bucket)
		})
		return nil
	})
	g.Go(func() error {
		grouped.ByMachine = GroupBy(records, func(r QualityRecord) string { return r.Machine })
		return nil
	})
	g.Go(func() error {
		grouped.ByInspector = GroupBy(records, func(r QualityRecord) string { return r.Inspector })
		return nil
	})
	g.Go(func() error {
		grouped.ByPart = GroupBy(records, func(r QualityRecord) string { return r.PartID })
		return nil
	})
	g.Go(func() error {
		grouped.ByCategory = GroupBy(records, func(r QualityRecord) string { return r.Category })
		return nil
	})
	g.Go(func() error {
		grouped.Global = Bucket{Key: "all"}
		for _, rec := range records {
			grouped.Global.add(rec)
		}
		return nil
	})

	// The closures only aggregate; they have no failure paths.
	_ = g.Wait()
	return grouped
}
