package activity_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/kata/activity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(activity.DateLayout, s)
	if err != nil {
		panic(err)
	}

	return t
}

func TestParseType(t *testing.T) {
	for _, typ := range activity.Types() {
		got, err := activity.ParseType(" " + strings.ToUpper(string(typ)) + " ")
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	_, err := activity.ParseType("purchase")
	assert.ErrorIs(t, err, activity.ErrUnknownType)

	_, err = activity.ParseTypes([]string{"call", "nope"})
	assert.ErrorIs(t, err, activity.ErrUnknownType)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, activity.DaysBetween(day("2025-01-06"), day("2025-01-06")))
	assert.Equal(t, 7, activity.DaysBetween(day("2025-01-06"), day("2025-01-13")))
	assert.Equal(t, -2, activity.DaysBetween(day("2025-01-06"), day("2025-01-04")))

	// time of day is ignored
	late := time.Date(2025, 1, 6, 23, 59, 0, 0, time.UTC)
	early := time.Date(2025, 1, 7, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, activity.DaysBetween(late, early))
}

func TestWeekStart(t *testing.T) {
	// 2025-01-06 is a Monday.
	assert.Equal(t, day("2025-01-06"), activity.WeekStart(day("2025-01-06"), time.Monday))
	assert.Equal(t, day("2025-01-06"), activity.WeekStart(day("2025-01-12"), time.Monday))
	assert.Equal(t, day("2025-01-13"), activity.WeekStart(day("2025-01-19"), time.Monday))
	assert.Equal(t, day("2025-01-19"), activity.WeekStart(day("2025-01-19"), time.Sunday))
	assert.Equal(t, day("2025-01-12"), activity.WeekStart(day("2025-01-18"), time.Sunday))
}

func TestParseWeekday(t *testing.T) {
	d, err := activity.ParseWeekday("Monday")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d)

	d, err = activity.ParseWeekday("sun")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, d)

	_, err = activity.ParseWeekday("funday")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	got, err := activity.ParseDate("2025-01-06T18:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, day("2025-01-06"), got)

	_, err = activity.ParseDate("06/01/2025")
	assert.Error(t, err)
}

func TestReadActivities(t *testing.T) {
	in := `Activity Type,User ID,Category,Activity Date
review,u1,Restaurants,2025-01-08
Search, u2 ,Auto Repair,2025-01-07
`
	acts, err := activity.ReadActivities(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, acts, 2)

	assert.Equal(t, activity.Activity{
		UserID:   "u1",
		Date:     day("2025-01-08"),
		Category: "Restaurants",
		Type:     activity.Review,
	}, acts[0])
	assert.Equal(t, "u2", acts[1].UserID)
	assert.Equal(t, activity.Search, acts[1].Type)
}

func TestReadActivities_Errors(t *testing.T) {
	_, err := activity.ReadActivities(strings.NewReader(""))
	assert.ErrorIs(t, err, activity.ErrMissingColumn)

	_, err = activity.ReadActivities(strings.NewReader("user_id,activity_date,category\n"))
	assert.ErrorIs(t, err, activity.ErrMissingColumn)

	bad := "user_id,activity_date,category,activity_type\nu1,2025-13-01,X,view\n"
	_, err = activity.ReadActivities(strings.NewReader(bad))
	assert.ErrorIs(t, err, activity.ErrBadRow)
	assert.Contains(t, err.Error(), "line 2")

	badType := "user_id,activity_date,category,activity_type\nu1,2025-01-01,X,buy\n"
	_, err = activity.ReadActivities(strings.NewReader(badType))
	assert.ErrorIs(t, err, activity.ErrBadRow)

	noUser := "user_id,activity_date,category,activity_type\n,2025-01-01,X,view\n"
	_, err = activity.ReadActivities(strings.NewReader(noUser))
	assert.ErrorIs(t, err, activity.ErrBadRow)

	short := "user_id,activity_date,category,activity_type\nu1,2025-01-01\n"
	_, err = activity.ReadActivities(strings.NewReader(short))
	assert.ErrorIs(t, err, activity.ErrBadRow)
}

func TestReadSignups(t *testing.T) {
	sups, err := activity.ReadSignups(strings.NewReader("user_id,signup_date\nu1,2025-01-06\nu2,2025-01-07\n"))
	require.NoError(t, err)
	assert.Equal(t, []activity.Signup{
		{UserID: "u1", Date: day("2025-01-06")},
		{UserID: "u2", Date: day("2025-01-07")},
	}, sups)

	_, err = activity.ReadSignups(strings.NewReader("user_id\nu1\n"))
	assert.ErrorIs(t, err, activity.ErrMissingColumn)
}

func TestSample(t *testing.T) {
	ds := activity.Sample()
	assert.Len(t, ds.Signups, 6)
	assert.Len(t, ds.Activities, 12)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "signups.csv")
	require.NoError(t, os.WriteFile(path, []byte("user_id,signup_date\nx,2025-02-03\n"), 0o644))

	// signups from disk, activities from the sample
	ds, err := activity.Load("", path)
	require.NoError(t, err)
	assert.Len(t, ds.Signups, 1)
	assert.Len(t, ds.Activities, len(activity.Sample().Activities))

	_, err = activity.Load(filepath.Join(dir, "missing.csv"), "")
	assert.Error(t, err)
}
