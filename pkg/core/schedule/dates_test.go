package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(DateLayout)
	}
	return out
}

func TestDateSet_DeduplicatesAndSorts(t *testing.T) {
	set := NewDateSet()
	set.Add(date("2024-03-06"))
	set.Add(date("2024-03-04"))
	set.Add(time.Date(2024, 3, 6, 15, 30, 0, 0, time.Local))

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(date("2024-03-04")))
	assert.False(t, set.Contains(date("2024-03-05")))
	assert.Equal(t, []string{"2024-03-04", "2024-03-06"}, formatDates(set.Sorted()))
}

func TestDateSet_Merge(t *testing.T) {
	a := NewDateSet()
	a.Add(date("2024-03-04"))
	b := NewDateSet()
	b.Add(date("2024-03-04"))
	b.Add(date("2024-03-11"))

	a.Merge(b)
	a.Merge(nil)

	assert.Equal(t, []string{"2024-03-04", "2024-03-11"}, formatDates(a.Sorted()))
}

func TestDateSet_ZeroValueUsable(t *testing.T) {
	var set DateSet
	set.Add(date("2024-03-04"))
	assert.Equal(t, 1, set.Len())
}

func TestGroupByWeek_Basic(t *testing.T) {
	buckets := GroupByWeek([]time.Time{
		date("2024-03-12"),
		date("2024-03-04"),
		date("2024-03-10"),
		date("2024-03-05"),
		date("2024-03-04"),
	})

	require.Len(t, buckets, 2)
	assert.Equal(t, WeekKey{Year: 2024, Week: 10}, buckets[0].Key)
	assert.Equal(t, []string{"2024-03-04", "2024-03-05", "2024-03-10"}, formatDates(buckets[0].Dates))
	assert.Equal(t, WeekKey{Year: 2024, Week: 11}, buckets[1].Key)
	assert.Equal(t, []string{"2024-03-12"}, formatDates(buckets[1].Dates))
}

func TestGroupByWeek_DecemberInNextYearsWeekOne(t *testing.T) {
	// 2024-12-30 (Mon) and 2024-12-31 (Tue) belong to ISO week 1 of 2025
	buckets := GroupByWeek([]time.Time{
		date("2025-01-02"),
		date("2024-12-31"),
		date("2024-12-30"),
		date("2024-12-29"),
	})

	require.Len(t, buckets, 2)
	assert.Equal(t, WeekKey{Year: 2024, Week: 52}, buckets[0].Key)
	assert.Equal(t, []string{"2024-12-29"}, formatDates(buckets[0].Dates))
	assert.Equal(t, WeekKey{Year: 2025, Week: 1}, buckets[1].Key)
	assert.Equal(t, []string{"2024-12-30", "2024-12-31", "2025-01-02"}, formatDates(buckets[1].Dates))
}

func TestGroupByWeek_JanuaryInPreviousYearsLastWeek(t *testing.T) {
	// 2021-01-01 (Fri) is in ISO week 53 of 2020
	buckets := GroupByWeek([]time.Time{date("2021-01-01"), date("2020-12-28")})

	require.Len(t, buckets, 1)
	assert.Equal(t, WeekKey{Year: 2020, Week: 53}, buckets[0].Key)
	assert.Equal(t, []string{"2020-12-28", "2021-01-01"}, formatDates(buckets[0].Dates))
}

func TestGroupByWeek_SameWeekNumberDifferentYears(t *testing.T) {
	buckets := GroupByWeek([]time.Time{date("2024-03-04"), date("2025-03-03")})

	require.Len(t, buckets, 2)
	assert.Equal(t, 10, buckets[0].Key.Week)
	assert.Equal(t, 10, buckets[1].Key.Week)
	assert.NotEqual(t, buckets[0].Key, buckets[1].Key)
}

func TestGroupByWeek_Empty(t *testing.T) {
	assert.Empty(t, GroupByWeek(nil))
}

func TestWeekKey_String(t *testing.T) {
	assert.Equal(t, "2024-W09", WeekKey{Year: 2024, Week: 9}.String())
}
