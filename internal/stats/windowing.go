package stats

import "time"

// SnapToStart normalizes a timestamp to the beginning of its bucket
// ("day", "week" or "month"). Weeks anchor on Monday.
func SnapToStart(t time.Time, bucket string) time.Time {
	if t.IsZero() {
		return t
	}
	switch bucket {
	case "month":
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case "week":
		weekday := int(t.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday -> 7
		}
		return time.Date(t.Year(), t.Month(), t.Day()-(weekday-1), 0, 0, 0, 0, t.Location())
	default: // day
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
}

// NextBucket advances a bucket start to the start of the following bucket.
func NextBucket(t time.Time, bucket string) time.Time {
	switch bucket {
	case "month":
		return t.AddDate(0, 1, 0)
	case "week":
		return t.AddDate(0, 0, 7)
	default: // day
		return t.AddDate(0, 0, 1)
	}
}

// BucketLabel formats a bucket start so that labels sort lexicographically
// in chronological order: ISO dates for day and week (the week's Monday),
// "2006-01" for month.
func BucketLabel(t time.Time, bucket string) string {
	if bucket == "month" {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}

// ParseBucketLabel inverts BucketLabel.
func ParseBucketLabel(label, bucket string) (time.Time, bool) {
	layout := "2006-01-02"
	if bucket == "month" {
		layout = "2006-01"
	}
	t, err := time.Parse(layout, label)
	return t, err == nil
}

// Subdivide returns every bucket start from the bucket containing `from`
// through the bucket containing `to`, inclusive.
func Subdivide(from, to time.Time, bucket string) []time.Time {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil
	}
	var buckets []time.Time
	current := SnapToStart(from, bucket)
	last := SnapToStart(to, bucket)
	for !current.After(last) {
		buckets = append(buckets, current)
		current = NextBucket(current, bucket)
	}
	return buckets
}
