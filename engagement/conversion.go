package engagement

import (
	"sort"
	"time"

	"github.com/katalvlaran/kata/activity"
)

// ConversionTimes returns, per user, the number of days between their
// first activity and their first converting activity. Users who never
// converted report Days=0, Converted=false. Sorted by user ID.
func ConversionTimes(activities []activity.Activity, opts ...Option) ([]UserConversion, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	converting := make(map[activity.Type]bool, len(cfg.ConversionTypes))
	for _, t := range cfg.ConversionTypes {
		converting[t] = true
	}

	type span struct {
		first     time.Time
		converted time.Time
		ok        bool
	}
	users := make(map[string]*span)
	for _, a := range activities {
		s, seen := users[a.UserID]
		if !seen {
			s = &span{first: a.Date}
			users[a.UserID] = s
		}
		if a.Date.Before(s.first) {
			s.first = a.Date
		}
		if converting[a.Type] && (!s.ok || a.Date.Before(s.converted)) {
			s.converted, s.ok = a.Date, true
		}
	}

	out := make([]UserConversion, 0, len(users))
	for user, s := range users {
		uc := UserConversion{UserID: user}
		if s.ok {
			uc.Days = activity.DaysBetween(s.first, s.converted)
			uc.Converted = true
		}
		out = append(out, uc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })

	return out, nil
}

// MedianDays returns the median Days over conversions. With convertedOnly
// the users who never converted are left out. An empty selection yields
// ErrNoData.
func MedianDays(conversions []UserConversion, convertedOnly bool) (float64, error) {
	days := make([]int, 0, len(conversions))
	for _, c := range conversions {
		if convertedOnly && !c.Converted {
			continue
		}
		days = append(days, c.Days)
	}
	if len(days) == 0 {
		return 0, ErrNoData
	}

	sort.Ints(days)
	mid := len(days) / 2
	if len(days)%2 == 1 {
		return float64(days[mid]), nil
	}

	return float64(days[mid-1]+days[mid]) / 2, nil
}
