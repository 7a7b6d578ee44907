package cohort

import (
	"sort"
	"time"

	"github.com/katalvlaran/kata/activity"
)

// Conversion reports, per signup week, how many users converted within
// the window after signing up.
//
// Steps:
//  1. Keep the earliest signup per user.
//  2. Index converting activities by user.
//  3. Flag a user converted if any converting activity lands in
//     [signup, signup + WindowDays].
//  4. Bucket users by WeekStart(signup) and compute the rate per week.
//
// Activities from users without a signup are ignored. The result is
// sorted by week ascending.
func Conversion(signups []activity.Signup, activities []activity.Activity, opts ...Option) ([]WeekConversion, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 1) Earliest signup per user.
	signedUp := make(map[string]time.Time, len(signups))
	for _, s := range signups {
		if prev, ok := signedUp[s.UserID]; !ok || s.Date.Before(prev) {
			signedUp[s.UserID] = s.Date
		}
	}

	// 2) Converting activity dates per user.
	converting := make(map[activity.Type]bool, len(cfg.ConversionTypes))
	for _, t := range cfg.ConversionTypes {
		converting[t] = true
	}
	dates := make(map[string][]time.Time)
	for _, a := range activities {
		if converting[a.Type] {
			dates[a.UserID] = append(dates[a.UserID], a.Date)
		}
	}

	// 3) + 4) Flag and bucket.
	weeks := make(map[time.Time]*WeekConversion)
	for user, signup := range signedUp {
		week := activity.WeekStart(signup, cfg.WeekStart)
		wc, ok := weeks[week]
		if !ok {
			wc = &WeekConversion{Week: week}
			weeks[week] = wc
		}
		wc.TotalSignups++
		if convertedWithin(signup, dates[user], cfg.WindowDays) {
			wc.Converted++
		}
	}

	out := make([]WeekConversion, 0, len(weeks))
	for _, wc := range weeks {
		wc.Rate = rate(wc.Converted, wc.TotalSignups)
		out = append(out, *wc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week.Before(out[j].Week) })

	return out, nil
}

// convertedWithin reports whether any date falls within [start, start+window] days.
func convertedWithin(start time.Time, dates []time.Time, window int) bool {
	for _, d := range dates {
		if days := activity.DaysBetween(start, d); days >= 0 && days <= window {
			return true
		}
	}

	return false
}
