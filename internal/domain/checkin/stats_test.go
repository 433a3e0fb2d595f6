package checkin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var statsNow = time.Date(2026, time.March, 11, 14, 30, 0, 0, time.UTC)

func entryAt(ts time.Time, typ EntryType, hours float64) Entry {
	return Entry{Type: typ, Hours: hours, CreatedAt: ts}
}

func TestComputeStats_Empty(t *testing.T) {
	snap := ComputeStats(nil, statsNow)

	require.Zero(t, snap.Total)
	require.Zero(t, snap.Today)
	require.Zero(t, snap.Week)
	require.Zero(t, snap.Streak)
	require.Zero(t, snap.TotalHours)
	require.Len(t, snap.DailyActivity, 7, "histogram always covers seven days")
	for _, bucket := range snap.DailyActivity {
		require.Zero(t, bucket.Count)
	}
}

func TestComputeStats_TotalsAndByType(t *testing.T) {
	entries := []Entry{
		entryAt(statsNow.Add(-time.Hour), TypeProgress, 2),
		entryAt(statsNow.Add(-2*time.Hour), TypeProgress, 1.5),
		entryAt(statsNow.AddDate(0, 0, -2), TypeGotcha, 0),
		entryAt(statsNow.AddDate(0, 0, -30), TypeTip, 0.5),
	}

	snap := ComputeStats(entries, statsNow)

	require.Equal(t, 4, snap.Total)
	require.Equal(t, 2, snap.ByType[TypeProgress])
	require.Equal(t, 1, snap.ByType[TypeGotcha])
	require.Equal(t, 1, snap.ByType[TypeTip])
	require.Equal(t, 4.0, snap.TotalHours)

	sum := 0
	for _, n := range snap.ByType {
		sum += n
	}
	require.Equal(t, snap.Total, sum)
}

func TestComputeStats_DayBoundaries(t *testing.T) {
	midnight := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		// One minute before midnight is yesterday, one after is today.
		entryAt(midnight.Add(-time.Minute), TypeProgress, 0),
		entryAt(midnight.Add(time.Minute), TypeProgress, 0),
	}

	snap := ComputeStats(entries, statsNow)

	require.Equal(t, 1, snap.Today)
	require.Equal(t, 2, snap.Week)
	require.Equal(t, 1, snap.DailyActivity[6].Count, "today is the last bucket")
	require.Equal(t, 1, snap.DailyActivity[5].Count)
}

func TestComputeStats_MidnightIsToday(t *testing.T) {
	midnight := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		entryAt(midnight, TypeProgress, 0),
	}

	snap := ComputeStats(entries, statsNow)

	require.Equal(t, 1, snap.Today, "the day boundary is an inclusive lower bound")
	require.Equal(t, 1, snap.Streak)
	require.Equal(t, 1, snap.DailyActivity[6].Count)
}

func TestComputeStats_Repeatable(t *testing.T) {
	entries := []Entry{
		entryAt(statsNow.Add(-time.Hour), TypeProgress, 2),
		entryAt(statsNow.AddDate(0, 0, -1), TypeGotcha, 0.5),
		entryAt(statsNow.AddDate(0, 0, -3), TypeError, 0),
	}

	first := ComputeStats(entries, statsNow)
	second := ComputeStats(entries, statsNow)

	require.Equal(t, first, second)
}

func TestComputeStats_WeekWindow(t *testing.T) {
	entries := []Entry{
		entryAt(statsNow.AddDate(0, 0, -7), TypeProgress, 0),
		entryAt(statsNow.AddDate(0, 0, -8), TypeProgress, 0),
	}

	snap := ComputeStats(entries, statsNow)

	require.Equal(t, 2, snap.Total)
	require.Equal(t, 1, snap.Week, "window is today plus the seven preceding days")
}

func TestComputeStats_BucketLabels(t *testing.T) {
	snap := ComputeStats(nil, statsNow)

	require.Equal(t, "Wed", snap.DailyActivity[6].Label)
	require.Equal(t, "Thu", snap.DailyActivity[0].Label, "oldest bucket first")
}

func TestComputeStats_Streak(t *testing.T) {
	t.Run("consecutive days ending today", func(t *testing.T) {
		entries := []Entry{
			entryAt(statsNow, TypeProgress, 0),
			entryAt(statsNow.AddDate(0, 0, -1), TypeProgress, 0),
			entryAt(statsNow.AddDate(0, 0, -2), TypeProgress, 0),
		}
		snap := ComputeStats(entries, statsNow)
		require.Equal(t, 3, snap.Streak)
	})

	t.Run("gap breaks the streak", func(t *testing.T) {
		entries := []Entry{
			entryAt(statsNow, TypeProgress, 0),
			entryAt(statsNow.AddDate(0, 0, -2), TypeProgress, 0),
		}
		snap := ComputeStats(entries, statsNow)
		require.Equal(t, 1, snap.Streak)
	})

	t.Run("nothing today means no streak", func(t *testing.T) {
		entries := []Entry{
			entryAt(statsNow.AddDate(0, 0, -1), TypeProgress, 0),
			entryAt(statsNow.AddDate(0, 0, -2), TypeProgress, 0),
		}
		snap := ComputeStats(entries, statsNow)
		require.Zero(t, snap.Streak)
	})

	t.Run("multiple entries per day count once", func(t *testing.T) {
		entries := []Entry{
			entryAt(statsNow, TypeProgress, 0),
			entryAt(statsNow.Add(-time.Hour), TypeGotcha, 0),
			entryAt(statsNow.AddDate(0, 0, -1), TypeProgress, 0),
		}
		snap := ComputeStats(entries, statsNow)
		require.Equal(t, 2, snap.Streak)
	})
}

func TestComputeStats_DuplicateTimestamps(t *testing.T) {
	ts := statsNow.Add(-time.Hour)
	entries := []Entry{
		entryAt(ts, TypeProgress, 1),
		entryAt(ts, TypeProgress, 1),
	}

	snap := ComputeStats(entries, statsNow)

	require.Equal(t, 2, snap.Total, "identical timestamps are not deduplicated")
	require.Equal(t, 2, snap.Today)
	require.Equal(t, 2.0, snap.TotalHours)
}

func TestComputeStats_LocalDayBuckets(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2026, time.March, 11, 1, 0, 0, 0, loc)

	// 23:00 local yesterday, stored in UTC.
	entry := entryAt(time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC), TypeProgress, 0)

	snap := ComputeStats([]Entry{entry}, now)

	require.Zero(t, snap.Today, "bucketing follows now's location, not UTC")
	require.Equal(t, 1, snap.DailyActivity[5].Count)
}
