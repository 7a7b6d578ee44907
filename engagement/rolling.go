package engagement

import (
	"sort"
	"time"

	"github.com/katalvlaran/kata/activity"
)

// Rolling counts activities per (category, date) and, for each date that
// has activity, sums the counts over the trailing WindowDays calendar
// days ending on that date. Days without activity are not emitted.
//
// Complexity: O(A + D log D) for A activities over D distinct
// (category, date) pairs; the window sum is maintained with two pointers.
func Rolling(activities []activity.Activity, opts ...Option) ([]RollingCount, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 1) Daily counts per category.
	daily := make(map[string]map[time.Time]int)
	for _, a := range activities {
		days, ok := daily[a.Category]
		if !ok {
			days = make(map[time.Time]int)
			daily[a.Category] = days
		}
		days[activity.Day(a.Date)]++
	}

	cats := make([]string, 0, len(daily))
	for cat := range daily {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	// 2) Sliding window over each category's sorted dates.
	var out []RollingCount
	for _, cat := range cats {
		rows := make([]RollingCount, 0, len(daily[cat]))
		for d, n := range daily[cat] {
			rows = append(rows, RollingCount{Category: cat, Date: d, Count: n})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })

		sum, lo := 0, 0
		for hi := range rows {
			sum += rows[hi].Count
			for activity.DaysBetween(rows[lo].Date, rows[hi].Date) >= cfg.WindowDays {
				sum -= rows[lo].Count
				lo++
			}
			rows[hi].Rolling = sum
		}
		out = append(out, rows...)
	}

	return out, nil
}
