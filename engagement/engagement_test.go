package engagement_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/kata/activity"
	"github.com/katalvlaran/kata/engagement"
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

func TestTopCategories_Sample(t *testing.T) {
	got := engagement.TopCategories(activity.Sample().Activities)
	want := []engagement.UserCategory{
		{UserID: "u1", Category: "Restaurants", Count: 2},
		{UserID: "u2", Category: "Auto Repair", Count: 2},
		{UserID: "u3", Category: "Restaurants", Count: 3},
		{UserID: "u4", Category: "Home Services", Count: 2},
		// one Restaurants, one Home Services: tie goes to the smaller name
		{UserID: "u5", Category: "Home Services", Count: 1},
	}
	assert.Equal(t, want, got)
}

func TestTopCategories_Empty(t *testing.T) {
	assert.Empty(t, engagement.TopCategories(nil))
}

func TestRolling_Sample(t *testing.T) {
	got, err := engagement.Rolling(activity.Sample().Activities)
	require.NoError(t, err)

	type row struct {
		cat     string
		date    string
		rolling int
	}
	want := []row{
		{"Auto Repair", "2025-01-07", 1},
		{"Auto Repair", "2025-01-20", 1},
		{"Home Services", "2025-01-14", 1},
		{"Home Services", "2025-01-16", 2},
		{"Home Services", "2025-01-20", 3},
		{"Home Services", "2025-01-25", 2},
		{"Restaurants", "2025-01-06", 1},
		{"Restaurants", "2025-01-08", 2},
		{"Restaurants", "2025-01-10", 3},
		{"Restaurants", "2025-01-11", 4},
		{"Restaurants", "2025-01-15", 3},
		{"Restaurants", "2025-01-16", 4},
	}
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w.cat, got[i].Category, "row %d", i)
		assert.Equal(t, day(w.date), got[i].Date, "row %d", i)
		assert.Equal(t, w.rolling, got[i].Rolling, "row %d (%s %s)", i, w.cat, w.date)
	}
}

func TestRolling_SameDayAndWindow(t *testing.T) {
	acts := []activity.Activity{
		{UserID: "a", Category: "C", Date: day("2025-01-01")},
		{UserID: "b", Category: "C", Date: day("2025-01-01")},
		{UserID: "a", Category: "C", Date: day("2025-01-02")},
		{UserID: "a", Category: "C", Date: day("2025-01-03")},
	}

	got, err := engagement.Rolling(acts, engagement.WithWindowDays(1))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 1, 1}, []int{got[0].Rolling, got[1].Rolling, got[2].Rolling})
	assert.Equal(t, 2, got[0].Count)

	got, err = engagement.Rolling(acts, engagement.WithWindowDays(2))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 2}, []int{got[0].Rolling, got[1].Rolling, got[2].Rolling})

	_, err = engagement.Rolling(acts, engagement.WithWindowDays(0))
	assert.ErrorIs(t, err, engagement.ErrBadWindow)
}

func TestConversionTimes_Sample(t *testing.T) {
	got, err := engagement.ConversionTimes(activity.Sample().Activities)
	require.NoError(t, err)
	want := []engagement.UserConversion{
		{UserID: "u1", Days: 2, Converted: true},
		{UserID: "u2", Days: 13, Converted: true},
		{UserID: "u3", Days: 1, Converted: true},
		{UserID: "u4", Days: 0, Converted: false},
		{UserID: "u5", Days: 0, Converted: true},
	}
	assert.Equal(t, want, got)
}

func TestConversionTimes_UnorderedInput(t *testing.T) {
	acts := []activity.Activity{
		{UserID: "a", Date: day("2025-01-10"), Type: activity.Review},
		{UserID: "a", Date: day("2025-01-08"), Type: activity.Call},
		{UserID: "a", Date: day("2025-01-01"), Type: activity.Search},
	}
	got, err := engagement.ConversionTimes(acts)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].Days)

	got, err = engagement.ConversionTimes(acts, engagement.WithConversionTypes(activity.Review))
	require.NoError(t, err)
	assert.Equal(t, 9, got[0].Days)

	_, err = engagement.ConversionTimes(acts, engagement.WithConversionTypes())
	assert.ErrorIs(t, err, engagement.ErrNoConversionTypes)
}

func TestMedianDays(t *testing.T) {
	conv, err := engagement.ConversionTimes(activity.Sample().Activities)
	require.NoError(t, err)

	all, err := engagement.MedianDays(conv, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, all) // [0 0 1 2 13]

	onlyConverted, err := engagement.MedianDays(conv, true)
	require.NoError(t, err)
	assert.Equal(t, 1.5, onlyConverted) // [0 1 2 13]

	_, err = engagement.MedianDays(nil, false)
	assert.ErrorIs(t, err, engagement.ErrNoData)

	_, err = engagement.MedianDays([]engagement.UserConversion{{UserID: "x"}}, true)
	assert.ErrorIs(t, err, engagement.ErrNoData)
}
