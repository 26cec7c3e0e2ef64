package health

import (
	"fmt"
	"sort"
	"time"
)

type Granularity string

const (
	GranularityMinute Granularity = "minute"
	GranularityHour   Granularity = "hour"
	GranularityDay    Granularity = "day"
	GranularityWeek   Granularity = "week"
	GranularityMonth  Granularity = "month"
	GranularityYear   Granularity = "year"
)

func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case GranularityMinute, GranularityHour, GranularityDay,
		GranularityWeek, GranularityMonth, GranularityYear:
		return g, nil
	}
	return "", fmt.Errorf("unknown interval %q, expected minute|hour|day|week|month|year", s)
}

// Sample is one (timestamp, value) pair of a series.
type Sample struct {
	At    time.Time
	Value float64
}

type Bucket struct {
	Start   time.Time `json:"start"`
	Count   int       `json:"count"`
	Average float64   `json:"average"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
}

// Truncate floors t to the start of its calendar unit in t's own location.
// Weeks start on Monday.
func Truncate(t time.Time, g Granularity) time.Time {
	loc := t.Location()
	switch g {
	case GranularityMinute:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc)
	case GranularityHour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, loc)
	case GranularityDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	case GranularityWeek:
		daysSinceMonday := (int(t.Weekday()) + 6) % 7
		return time.Date(t.Year(), t.Month(), t.Day()-daysSinceMonday, 0, 0, 0, 0, loc)
	case GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	case GranularityYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
	}
	return t
}

// BucketByInterval groups samples by calendar truncation and averages each
// group. Only populated buckets are returned, ascending by start. Input order
// does not matter.
func BucketByInterval(samples []Sample, g Granularity) []Bucket {
	type acc struct {
		start    time.Time
		count    int
		sum      float64
		min, max float64
	}

	byKey := make(map[int64]*acc)
	for _, s := range samples {
		start := Truncate(s.At, g)
		key := start.UnixNano()
		a, ok := byKey[key]
		if !ok {
			byKey[key] = &acc{start: start, count: 1, sum: s.Value, min: s.Value, max: s.Value}
			continue
		}
		a.count++
		a.sum += s.Value
		a.min = min(a.min, s.Value)
		a.max = max(a.max, s.Value)
	}

	buckets := make([]Bucket, 0, len(byKey))
	for _, a := range byKey {
		buckets = append(buckets, Bucket{
			Start:   a.start,
			Count:   a.count,
			Average: a.sum / float64(a.count),
			Min:     a.min,
			Max:     a.max,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Start.Before(buckets[j].Start)
	})
	return buckets
}
