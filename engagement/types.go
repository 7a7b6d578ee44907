package engagement

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/kata/activity"
)

// Sentinel errors for engagement metrics.
var (
	// ErrBadWindow indicates a rolling window shorter than one day.
	ErrBadWindow = errors.New("engagement: rolling window must be at least one day")

	// ErrNoConversionTypes indicates an empty set of converting activity types.
	ErrNoConversionTypes = errors.New("engagement: at least one conversion type is required")

	// ErrNoData indicates there are no values to take a median of.
	ErrNoData = errors.New("engagement: no data")
)

// UserCategory is a user's most-engaged category.
type UserCategory struct {
	UserID   string `json:"user_id" yaml:"user_id"`
	Category string `json:"most_engaged_category" yaml:"most_engaged_category"`
	Count    int    `json:"activity_count" yaml:"activity_count"`
}

// RollingCount is the trailing-window activity total for one category on one date.
type RollingCount struct {
	Category string    `json:"category" yaml:"category"`
	Date     time.Time `json:"activity_date" yaml:"activity_date"`
	Count    int       `json:"count" yaml:"count"`
	Rolling  int       `json:"rolling_users" yaml:"rolling_users"`
}

// UserConversion is the time a user took to convert.
// Days is 0 and Converted is false when the user never converted.
type UserConversion struct {
	UserID    string `json:"user_id" yaml:"user_id"`
	Days      int    `json:"days_to_conversion" yaml:"days_to_conversion"`
	Converted bool   `json:"converted" yaml:"converted"`
}

// Options configures Rolling and ConversionTimes.
type Options struct {
	WindowDays      int
	ConversionTypes []activity.Type

	err error
}

// Option represents a functional option for engagement metrics.
type Option func(*Options)

// DefaultOptions returns a 7-day rolling window with call and review as
// converting activities.
func DefaultOptions() Options {
	return Options{
		WindowDays:      7,
		ConversionTypes: []activity.Type{activity.Call, activity.Review},
	}
}

// WithWindowDays sets the rolling window length; n < 1 → ErrBadWindow.
func WithWindowDays(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: %d", ErrBadWindow, n)
			return
		}
		o.WindowDays = n
	}
}

// WithConversionTypes replaces the set of converting activity types.
func WithConversionTypes(types ...activity.Type) Option {
	return func(o *Options) {
		if len(types) == 0 {
			o.err = ErrNoConversionTypes
			return
		}
		o.ConversionTypes = append([]activity.Type(nil), types...)
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}
