package cohort

import (
	"sort"
	"time"

	"github.com/katalvlaran/kata/activity"
)

// Retention reports, per category, how many users came back for a second
// activity within the window after their first one in that category.
//
// Only WindowDays is consulted; week and conversion options are ignored.
// The result is sorted by category.
func Retention(activities []activity.Activity, opts ...Option) ([]CategoryRetention, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// category → user → activity dates
	byCat := make(map[string]map[string][]time.Time)
	for _, a := range activities {
		users, ok := byCat[a.Category]
		if !ok {
			users = make(map[string][]time.Time)
			byCat[a.Category] = users
		}
		users[a.UserID] = append(users[a.UserID], a.Date)
	}

	out := make([]CategoryRetention, 0, len(byCat))
	for cat, users := range byCat {
		cr := CategoryRetention{Category: cat, TotalUsers: len(users)}
		for _, dates := range users {
			if retained(dates, cfg.WindowDays) {
				cr.Retained++
			}
		}
		cr.Rate = rate(cr.Retained, cr.TotalUsers)
		out = append(out, cr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })

	return out, nil
}

// retained reports whether the second-earliest date is within window days
// of the earliest. Fewer than two dates never count as retained.
func retained(dates []time.Time, window int) bool {
	if len(dates) < 2 {
		return false
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	return activity.DaysBetween(dates[0], dates[1]) <= window
}
