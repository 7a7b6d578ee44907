// Package engagement summarises how users interact with categories over
// time.
//
//   - TopCategories  : each user's most-used category (ties → smallest name)
//   - Rolling        : per category and date, activity count over the
//     trailing N calendar days, that date included
//   - ConversionTimes: days from a user's first activity to their first
//     converting one (call or review by default)
//   - MedianDays     : median of those conversion times
//
// All results are sorted so repeated runs print identically.
package engagement
