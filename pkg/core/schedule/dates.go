package schedule

import (
	"fmt"
	"slices"
	"time"
)

// DateSet accumulates the distinct dates seen while building records.
// It is not safe for concurrent use; give each goroutine its own set and Merge them.
type DateSet struct {
	dates map[time.Time]struct{}
}

// NewDateSet returns an empty set
func NewDateSet() *DateSet {
	return &DateSet{dates: make(map[time.Time]struct{})}
}

// Add registers a date. The time of day and location are discarded.
func (s *DateSet) Add(date time.Time) {
	if s.dates == nil {
		s.dates = make(map[time.Time]struct{})
	}
	s.dates[truncateDate(date)] = struct{}{}
}

// Contains reports whether date has been registered
func (s *DateSet) Contains(date time.Time) bool {
	_, ok := s.dates[truncateDate(date)]
	return ok
}

// Merge adds every date of other to s
func (s *DateSet) Merge(other *DateSet) {
	if other == nil {
		return
	}
	for d := range other.dates {
		s.Add(d)
	}
}

// Len returns the number of distinct dates
func (s *DateSet) Len() int {
	return len(s.dates)
}

// Sorted returns the dates in ascending order
func (s *DateSet) Sorted() []time.Time {
	out := make([]time.Time, 0, len(s.dates))
	for d := range s.dates {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	return out
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekKey identifies an ISO week
type WeekKey struct {
	Year int // ISO year, which differs from the calendar year around new year
	Week int
}

// WeekOf returns the ISO week containing date
func WeekOf(date time.Time) WeekKey {
	year, week := date.ISOWeek()
	return WeekKey{Year: year, Week: week}
}

// Compare orders week keys chronologically
func (k WeekKey) Compare(o WeekKey) int {
	if k.Year != o.Year {
		return k.Year - o.Year
	}
	return k.Week - o.Week
}

func (k WeekKey) String() string {
	return fmt.Sprintf("%d-W%02d", k.Year, k.Week)
}

// WeekBucket is the ascending list of dates falling in one ISO week
type WeekBucket struct {
	Key   WeekKey
	Dates []time.Time
}

// GroupByWeek groups dates by ISO week. Buckets are in chronological order, dates within a
// bucket ascending and distinct. Input order does not matter.
func GroupByWeek(dates []time.Time) []WeekBucket {
	set := NewDateSet()
	for _, d := range dates {
		set.Add(d)
	}

	var buckets []WeekBucket
	for _, d := range set.Sorted() {
		key := WeekOf(d)
		// Dates are sorted so a week's dates are contiguous
		if n := len(buckets); n > 0 && buckets[n-1].Key == key {
			buckets[n-1].Dates = append(buckets[n-1].Dates, d)
			continue
		}
		buckets = append(buckets, WeekBucket{Key: key, Dates: []time.Time{d}})
	}

	return buckets
}
