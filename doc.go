// Package kata collects small, well-tested solutions to classic interview
// drills and to the product-analytics questions that usually follow them:
// signup cohorts, category retention and engagement over an activity log.
//
// 🚀 What is kata?
//
//	A library of independent packages plus one CLI that runs all of them:
//		• Array drills: maximum subarray (Kadane), two-sum (two-pointer, hash map)
//		• Activity tables: CSV loading, typed activity kinds, calendar helpers
//		• Cohorts: weekly signup conversion, per-category retention
//		• Engagement: most engaged category, rolling N-day counts, time to conversion
//
// ✨ Why kata?
//
//   - Small surface – one entry point per question, functional options for the knobs
//   - Deterministic – every result is sorted, ties are broken explicitly
//   - Observable – step hooks on the drills, structured logs in the CLI
//   - Embedded sample – every analytics command works with no input files
//
// Layout:
//
//	subarray/    Kadane's maximum subarray with span bounds and a step hook
//	twosum/      two-pointer and hash-map two-sum
//	activity/    Activity/Signup types, CSV readers, embedded sample tables
//	cohort/      weekly signup conversion and category retention
//	engagement/  top category, rolling counts, days to conversion
//	internal/    config (viper), logging (charmbracelet/log), report formatters
//	cmd/kata/    the cobra CLI
//	examples/    runnable scenarios
//
// Quick start:
//
//	go run ./cmd/kata subarray --nums=-2,1,-3,4,-1,2,1,-5,4
//	go run ./cmd/kata conversion --window 7 --format json
package kata
