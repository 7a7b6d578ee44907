// Package config provides configuration management for the kata CLI.
package config

// Default configuration values.
const (
	// DefaultWindowDays is the inclusive cohort conversion/retention window.
	DefaultWindowDays = 7

	// DefaultRollingDays is the trailing window for rolling category activity.
	DefaultRollingDays = 7

	// DefaultWeekStart is the first day of a signup week.
	DefaultWeekStart = "monday"

	// DefaultFormat is the default report format.
	DefaultFormat = "table"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default log line format.
	DefaultLogFormat = "text"

	// EnvPrefix prefixes environment overrides, e.g. KATA_WINDOW_DAYS.
	EnvPrefix = "KATA"

	// AppName names the XDG config subdirectory.
	AppName = "kata"
)

// DefaultConversionTypes are the activity types that convert a signup cohort.
var DefaultConversionTypes = []string{"review"}

// DefaultEngagementConversionTypes are the activity types that end the
// days-to-conversion clock.
var DefaultEngagementConversionTypes = []string{"call", "review"}
