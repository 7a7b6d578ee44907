package activity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for decoding.
var (
	// ErrUnknownType indicates an activity_type outside the known set.
	ErrUnknownType = errors.New("activity: unknown activity type")

	// ErrMissingColumn indicates a required CSV header is absent.
	ErrMissingColumn = errors.New("activity: required column missing")

	// ErrBadRow indicates a CSV row that cannot be decoded.
	ErrBadRow = errors.New("activity: malformed row")
)

// Type is the kind of user interaction.
type Type string

// Known activity types.
const (
	Search Type = "search"
	View   Type = "view"
	Call   Type = "call"
	Review Type = "review"
)

// Types returns every known activity type in funnel order.
func Types() []Type {
	return []Type{Search, View, Call, Review}
}

// ParseType converts s to a Type, ignoring case and surrounding space.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Search, View, Call, Review:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// ParseTypes converts every element of ss.
func ParseTypes(ss []string) ([]Type, error) {
	out := make([]Type, 0, len(ss))
	for _, s := range ss {
		t, err := ParseType(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}

// Activity is one row of the activities table.
type Activity struct {
	UserID   string    `json:"user_id" yaml:"user_id"`
	Date     time.Time `json:"activity_date" yaml:"activity_date"`
	Category string    `json:"category" yaml:"category"`
	Type     Type      `json:"activity_type" yaml:"activity_type"`
}

// Signup is one row of the signups table.
type Signup struct {
	UserID string    `json:"user_id" yaml:"user_id"`
	Date   time.Time `json:"signup_date" yaml:"signup_date"`
}

// Dataset bundles both tables.
type Dataset struct {
	Activities []Activity
	Signups    []Signup
}
