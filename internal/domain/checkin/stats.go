package checkin

import "time"

// Snapshot is the derived statistics view over a workspace's check-in entries.
// It is recomputed from scratch on every call and never persisted.
type Snapshot struct {
	Total         int               `json:"total"`
	Today         int               `json:"today"`
	Week          int               `json:"week"`
	ByType        map[EntryType]int `json:"by_type"`
	DailyActivity []DayBucket       `json:"daily_activity"`
	Streak        int               `json:"streak"`
	TotalHours    float64           `json:"total_hours"`
}

// DayBucket is one day of the trailing-week histogram.
type DayBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ComputeStats derives a Snapshot from the given entries at the given instant.
// It is a pure function: no I/O, no mutation of the input, deterministic for a
// fixed (entries, now) pair. The caller injects now so results are testable.
//
// All day arithmetic is done on local calendar-day boundaries in now's
// location, never on rolling 24-hour windows: an entry at 23:59 and one at
// 00:01 the next minute land in different day buckets. The week counter covers
// today plus the seven preceding calendar days.
func ComputeStats(entries []Entry, now time.Time) Snapshot {
	loc := now.Location()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	weekStart := todayStart.AddDate(0, 0, -7)

	snap := Snapshot{
		ByType:        make(map[EntryType]int),
		DailyActivity: make([]DayBucket, 0, 7),
	}

	// Per-day counts keyed by local calendar date. Identical timestamps are
	// counted individually; there is no deduplication.
	byDay := make(map[string]int)
	for _, e := range entries {
		snap.Total++
		snap.ByType[e.Type]++
		snap.TotalHours += e.Hours

		ts := e.CreatedAt.In(loc)
		if !ts.Before(todayStart) {
			snap.Today++
		}
		if !ts.Before(weekStart) {
			snap.Week++
		}
		byDay[dayKey(ts)]++
	}

	// Seven buckets, oldest first, today last.
	for i := 6; i >= 0; i-- {
		day := todayStart.AddDate(0, 0, -i)
		snap.DailyActivity = append(snap.DailyActivity, DayBucket{
			Label: day.Format("Mon"),
			Count: byDay[dayKey(day)],
		})
	}

	// Walk backward from today until the first day with no entry. The walk is
	// bounded: once it passes the earliest entry, byDay misses and the loop
	// stops.
	for check := todayStart; byDay[dayKey(check)] > 0; check = check.AddDate(0, 0, -1) {
		snap.Streak++
	}

	return snap
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
