// Package activity defines the flat tabular records the analytics
// packages work on, and decodes them from CSV.
//
// Two tables are modelled:
//
//	activities: user_id, activity_date, category, activity_type
//	signups:    user_id, signup_date
//
// Headers are matched case-insensitively after snake_casing, so column
// order is free and "Activity Date" maps to activity_date. Dates are
// YYYY-MM-DD; RFC 3339 timestamps are accepted and truncated to the UTC
// calendar day.
//
// Sample returns small embedded tables for demos and the CLI default.
package activity
