package cohort

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/kata/activity"
)

// Sentinel errors for cohort computations.
var (
	// ErrBadWindow indicates a negative window length.
	ErrBadWindow = errors.New("cohort: window days must be non-negative")

	// ErrNoConversionTypes indicates an empty set of converting activity types.
	ErrNoConversionTypes = errors.New("cohort: at least one conversion type is required")
)

// DefaultWindowDays is the default inclusive conversion/retention window.
const DefaultWindowDays = 7

// WeekConversion is one signup-week cohort.
type WeekConversion struct {
	Week         time.Time `json:"signup_week" yaml:"signup_week"`
	TotalSignups int       `json:"total_signups" yaml:"total_signups"`
	Converted    int       `json:"converted_users" yaml:"converted_users"`
	Rate         float64   `json:"conversion_rate" yaml:"conversion_rate"`
}

// CategoryRetention is the retention outcome for one category.
type CategoryRetention struct {
	Category   string  `json:"category" yaml:"category"`
	TotalUsers int     `json:"total_users" yaml:"total_users"`
	Retained   int     `json:"retained_users" yaml:"retained_users"`
	Rate       float64 `json:"retention_rate" yaml:"retention_rate"`
}

// Options configures Conversion and Retention.
type Options struct {
	WindowDays      int
	WeekStart       time.Weekday
	ConversionTypes []activity.Type

	// err records an invalid option; surfaced when a metric runs.
	err error
}

// Option represents a functional option for cohort metrics.
type Option func(*Options)

// DefaultOptions returns a 7-day window, Monday weeks and review as the
// only converting activity.
func DefaultOptions() Options {
	return Options{
		WindowDays:      DefaultWindowDays,
		WeekStart:       time.Monday,
		ConversionTypes: []activity.Type{activity.Review},
	}
}

// WithWindowDays sets the inclusive window length.
//
//	n ≥ 0: window of n days
//	n < 0: invalid option → ErrBadWindow
func WithWindowDays(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadWindow, n)
			return
		}
		o.WindowDays = n
	}
}

// WithWeekStart sets the first day of a signup week.
func WithWeekStart(day time.Weekday) Option {
	return func(o *Options) {
		o.WeekStart = day
	}
}

// WithConversionTypes replaces the set of converting activity types.
// An empty list is rejected with ErrNoConversionTypes.
func WithConversionTypes(types ...activity.Type) Option {
	return func(o *Options) {
		if len(types) == 0 {
			o.err = ErrNoConversionTypes
			return
		}
		o.ConversionTypes = append([]activity.Type(nil), types...)
	}
}

// buildOptions applies opts over the defaults and reports any recorded error.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

// rate returns num/den, or 0 for an empty group.
func rate(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}
