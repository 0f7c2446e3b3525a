package monitor

import (
	"time"

	"watchpost.dev/monitor-status-service/pkg/models"
)

// ResolveBucket maps a timestamp to the start of its granularity-aligned
// bucket, normalized to UTC. A timestamp exactly on a boundary belongs to
// the bucket starting at that instant.
func ResolveBucket(ts time.Time, g models.Granularity) time.Time {
	t := ts.UTC()
	switch g {
	case models.GranularityMinute:
		return t.Truncate(time.Minute)
	case models.GranularityHour:
		return t.Truncate(time.Hour)
	case models.GranularityDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case models.GranularityAllTime:
		return time.Unix(0, 0).UTC()
	default:
		return t
	}
}

// BucketBoundaries lists every expected bucket start covering [from, to].
// Chart alignment depends on this never skipping a slot.
func BucketBoundaries(from, to time.Time, g models.Granularity) []time.Time {
	if g == models.GranularityAllTime {
		return []time.Time{ResolveBucket(from, g)}
	}

	end := to.UTC()
	var boundaries []time.Time
	for t := ResolveBucket(from, g); !t.After(end); t = nextBucketStart(t, g) {
		boundaries = append(boundaries, t)
	}
	return boundaries
}

func nextBucketStart(start time.Time, g models.Granularity) time.Time {
	switch g {
	case models.GranularityMinute:
		return start.Add(time.Minute)
	case models.GranularityHour:
		return start.Add(time.Hour)
	default:
		// day; calendar-aware so DST-free UTC days stay aligned
		return start.AddDate(0, 0, 1)
	}
}
