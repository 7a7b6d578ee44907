package main

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/kata/activity"
	"github.com/katalvlaran/kata/internal/config"
	"github.com/katalvlaran/kata/internal/logging"
	"github.com/katalvlaran/kata/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"format":     "output.format",
	"activities": "data.activities",
	"signups":    "data.signups",
	"window":     "window_days",
	"week-start": "week_start",
	"days":       "engagement.rolling_days",
}

// app carries state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	cfgFile string
	cfg     *config.Config
	viper   *viper.Viper
	log     *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "kata",
		Short: "Interview drills and activity analytics",
		Long: `kata runs small, self-contained exercises and prints the result.

Array drills:
  kata subarray --nums=-2,1,-3,4,-1,2,1,-5,4
  kata twosum --nums=2,7,11,15 --target 9

Activity analytics (embedded sample tables unless --activities/--signups are set):
  kata conversion --window 7
  kata retention
  kata top-category
  kata rolling --days 7
  kata conversion-time

Configuration is read from $XDG_CONFIG_HOME/kata/config.yaml and KATA_* environment
variables; flags override both.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/kata/config.yaml)")
	pf.StringP("format", "f", "", "output format: "+strings.Join(report.Available(), ", "))
	pf.BoolP("verbose", "v", false, "debug output")
	pf.String("activities", "", "activities CSV (user_id,activity_date,category,activity_type)")
	pf.String("signups", "", "signups CSV (user_id,signup_date)")

	root.AddCommand(
		newSubarrayCmd(a),
		newTwoSumCmd(a),
		newConversionCmd(a),
		newRetentionCmd(a),
		newTopCategoryCmd(a),
		newRollingCmd(a),
		newConversionTimeCmd(a),
		newConfigCmd(a),
	)

	return root
}

// setup loads configuration and initialises logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, v, err := config.Load(config.LoadOptions{
		Path:     a.cfgFile,
		Flags:    cmd.Flags(),
		FlagKeys: flagKeys,
	})
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	if err := logging.Init(logging.Config{
		Level:  level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	}); err != nil {
		return err
	}

	a.cfg = cfg
	a.viper = v
	a.log = logging.Get(cmd.Name())
	a.log.Debug("configuration loaded", "file", v.ConfigFileUsed(), "format", cfg.Output.Format)

	return nil
}

// dataset loads the activity tables named in the configuration.
func (a *app) dataset() (activity.Dataset, string, error) {
	ds, err := activity.Load(a.cfg.Data.Activities, a.cfg.Data.Signups)
	if err != nil {
		return activity.Dataset{}, "", err
	}

	source := "sample"
	if a.cfg.Data.Activities != "" || a.cfg.Data.Signups != "" {
		parts := []string{}
		for _, p := range []string{a.cfg.Data.Activities, a.cfg.Data.Signups} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		source = strings.Join(parts, ",")
	}
	a.log.Debug("dataset loaded", "source", source, "activities", len(ds.Activities), "signups", len(ds.Signups))

	return ds, source, nil
}

// render writes r to stdout in the configured format.
func (a *app) render(cmd *cobra.Command, r *report.Report) error {
	f, err := report.Get(a.cfg.Output.Format)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := f.Format(&buf, r); err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())

	return err
}
