package activity

import (
	"bytes"
	_ "embed"
)

var (
	//go:embed sample/activities.csv
	sampleActivities []byte

	//go:embed sample/signups.csv
	sampleSignups []byte
)

// Sample returns the embedded mock tables. It panics if they fail to
// decode, which only happens if the embedded files are broken.
func Sample() Dataset {
	acts, err := ReadActivities(bytes.NewReader(sampleActivities))
	if err != nil {
		panic("activity: embedded sample activities: " + err.Error())
	}
	sups, err := ReadSignups(bytes.NewReader(sampleSignups))
	if err != nil {
		panic("activity: embedded sample signups: " + err.Error())
	}

	return Dataset{Activities: acts, Signups: sups}
}
