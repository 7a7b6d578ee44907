package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/kata/activity"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeFile(t, "# empty\n")
	cfg, v, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	require.NotNil(t, v)

	assert.Equal(t, Default(), *cfg)

	day, err := cfg.Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, day)

	types, err := cfg.EngagementTypes()
	require.NoError(t, err)
	assert.Equal(t, []activity.Type{activity.Call, activity.Review}, types)
}

func TestLoad_FileValues(t *testing.T) {
	path := writeFile(t, `
window_days: 14
week_start: sunday
conversion_types: [review, call]
engagement:
  rolling_days: 3
output:
  format: json
data:
  activities: /tmp/acts.csv
`)
	cfg, _, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.WindowDays)
	assert.Equal(t, "sunday", cfg.WeekStart)
	assert.Equal(t, []string{"review", "call"}, cfg.ConversionTypes)
	assert.Equal(t, 3, cfg.Engagement.RollingDays)
	assert.Equal(t, []string{"call", "review"}, cfg.Engagement.ConversionTypes)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "/tmp/acts.csv", cfg.Data.Activities)
	assert.Equal(t, "", cfg.Data.Signups)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "window_days: 14\n")
	t.Setenv("KATA_WINDOW_DAYS", "21")
	t.Setenv("KATA_OUTPUT_FORMAT", "yaml")

	cfg, _, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 21, cfg.WindowDays)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	path := writeFile(t, "")
	t.Setenv("KATA_WINDOW_DAYS", "21")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("window", 0, "")
	fs.String("format", "", "")
	require.NoError(t, fs.Parse([]string{"--window", "3"}))

	cfg, _, err := Load(LoadOptions{
		Path:     path,
		Flags:    fs,
		FlagKeys: map[string]string{"window": "window_days", "format": "output.format", "absent": "x"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.WindowDays)
	// unchanged flag must not clobber the default
	assert.Equal(t, DefaultFormat, cfg.Output.Format)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative window": "window_days: -1\n",
		"rolling zero":    "engagement:\n  rolling_days: 0\n",
		"bad weekday":     "week_start: someday\n",
		"bad type":        "conversion_types: [purchase]\n",
		"empty types":     "conversion_types: []\n",
		"bad level":       "logging:\n  level: chatty\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := Load(LoadOptions{Path: writeFile(t, body)})
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	_, _, err := Load(LoadOptions{Path: writeFile(t, "window_days: [\n")})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	created, err := WriteDefault(path)
	require.NoError(t, err)
	assert.True(t, created)

	// round-trips through Load
	cfg, _, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	created, err = WriteDefault(path)
	require.NoError(t, err)
	assert.False(t, created, "existing file must be left alone")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, v, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, path, v.ConfigFileUsed())
}
