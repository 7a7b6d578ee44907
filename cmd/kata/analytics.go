package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/kata/cohort"
	"github.com/katalvlaran/kata/engagement"
	"github.com/katalvlaran/kata/internal/report"
	"github.com/spf13/cobra"
)

func newConversionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conversion",
		Short: "Weekly signup cohorts and their conversion rate",
		Long: `Group users by the week they signed up and report the share that
wrote a review (or another configured conversion type) within the
conversion window (inclusive).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.cohortOptions()
			if err != nil {
				return err
			}
			ds, source, err := a.dataset()
			if err != nil {
				return err
			}

			rows, err := cohort.Conversion(ds.Signups, ds.Activities, opts...)
			if err != nil {
				return err
			}

			r := report.New("Signup conversion by week", "signup_week", "total_signups", "converted_users", "conversion_rate")
			r.Meta.Source = source
			for _, w := range rows {
				r.AddRow(report.Date(w.Week), report.Int(w.TotalSignups), report.Int(w.Converted), report.Rate(w.Rate))
			}
			r.AddNote("window %d days, weeks start %s", a.cfg.WindowDays, a.cfg.WeekStart)

			return a.render(cmd, r)
		},
	}

	cmd.Flags().Int("window", 0, "conversion window in days (default from config, 7)")
	cmd.Flags().String("week-start", "", "first day of a cohort week (default from config, monday)")

	return cmd
}

func newRetentionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retention",
		Short: "Per-category share of users who came back within the window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.cohortOptions()
			if err != nil {
				return err
			}
			ds, source, err := a.dataset()
			if err != nil {
				return err
			}

			rows, err := cohort.Retention(ds.Activities, opts...)
			if err != nil {
				return err
			}

			r := report.New("Category retention", "category", "total_users", "retained_users", "retention_rate")
			r.Meta.Source = source
			for _, c := range rows {
				r.AddRow(c.Category, report.Int(c.TotalUsers), report.Int(c.Retained), report.Rate(c.Rate))
			}
			r.AddNote("retained: a second activity within %d days of the first", a.cfg.WindowDays)

			return a.render(cmd, r)
		},
	}

	cmd.Flags().Int("window", 0, "retention window in days (default from config, 7)")

	return cmd
}

func newTopCategoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "top-category",
		Short: "Each user's most engaged category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, source, err := a.dataset()
			if err != nil {
				return err
			}

			r := report.New("Most engaged category per user", "user_id", "most_engaged_category", "activity_count")
			r.Meta.Source = source
			for _, u := range engagement.TopCategories(ds.Activities) {
				r.AddRow(u.UserID, u.Category, report.Int(u.Count))
			}

			return a.render(cmd, r)
		},
	}
}

func newRollingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rolling",
		Short: "Trailing N-day activity counts per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.engagementOptions()
			if err != nil {
				return err
			}
			ds, source, err := a.dataset()
			if err != nil {
				return err
			}

			rows, err := engagement.Rolling(ds.Activities, opts...)
			if err != nil {
				return err
			}

			r := report.New(fmt.Sprintf("Rolling %d-day activity", a.cfg.Engagement.RollingDays),
				"category", "activity_date", "count", "rolling_users")
			r.Meta.Source = source
			for _, c := range rows {
				r.AddRow(c.Category, report.Date(c.Date), report.Int(c.Count), report.Int(c.Rolling))
			}

			return a.render(cmd, r)
		},
	}

	cmd.Flags().Int("days", 0, "trailing window in days (default from config, 7)")

	return cmd
}

func newConversionTimeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "conversion-time",
		Short: "Days from first activity to first call or review, per user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.engagementOptions()
			if err != nil {
				return err
			}
			ds, source, err := a.dataset()
			if err != nil {
				return err
			}

			rows, err := engagement.ConversionTimes(ds.Activities, opts...)
			if err != nil {
				return err
			}

			r := report.New("Time to conversion", "user_id", "days_to_conversion", "converted")
			r.Meta.Source = source
			for _, u := range rows {
				r.AddRow(u.UserID, report.Int(u.Days), strconv.FormatBool(u.Converted))
			}

			for _, m := range []struct {
				label         string
				convertedOnly bool
			}{
				{"all users", false},
				{"converted users", true},
			} {
				median, err := engagement.MedianDays(rows, m.convertedOnly)
				if errors.Is(err, engagement.ErrNoData) {
					r.AddNote("median days (%s): n/a", m.label)
					continue
				}
				if err != nil {
					return err
				}
				r.AddNote("median days (%s): %s", m.label, report.Float(median))
			}

			return a.render(cmd, r)
		},
	}
}

// cohortOptions translates the loaded configuration into cohort options.
func (a *app) cohortOptions() ([]cohort.Option, error) {
	day, err := a.cfg.Weekday()
	if err != nil {
		return nil, err
	}
	types, err := a.cfg.CohortTypes()
	if err != nil {
		return nil, err
	}

	return []cohort.Option{
		cohort.WithWindowDays(a.cfg.WindowDays),
		cohort.WithWeekStart(day),
		cohort.WithConversionTypes(types...),
	}, nil
}

// engagementOptions translates the loaded configuration into engagement options.
func (a *app) engagementOptions() ([]engagement.Option, error) {
	types, err := a.cfg.EngagementTypes()
	if err != nil {
		return nil, err
	}

	return []engagement.Option{
		engagement.WithWindowDays(a.cfg.Engagement.RollingDays),
		engagement.WithConversionTypes(types...),
	}, nil
}
