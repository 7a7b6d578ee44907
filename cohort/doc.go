// Package cohort computes funnel rates for groups of users that share a
// starting period or a category.
//
// Two metrics are provided:
//
//   - Conversion: users are bucketed by the week they signed up in. A
//     user converts when they perform a converting activity (review, by
//     default) within WindowDays of signing up. Users without any
//     activity still count towards their week's total.
//   - Retention: per category, a user is retained when their second
//     activity in that category happens within WindowDays of their first.
//     A user with a single activity in a category is not retained.
//
// Rates are Converted/Total (or Retained/Total) and are 0 for an empty
// group, never NaN.
//
// Options:
//
//   - WithWindowDays(n)         : inclusive window in days (default 7, n ≥ 0)
//   - WithWeekStart(day)        : first day of a signup week (default Monday)
//   - WithConversionTypes(t...) : activity types that count as converting
//
// Complexity: O(S + A log A) for S signups and A activities.
package cohort
