package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad(t *testing.T) {
	defer viper.Reset()

	t.Run("Defaults Without Config File", func(t *testing.T) {
		viper.Reset()
		dir := chdirTemp(t)

		require.NoError(t, Load(""))

		s := Current()
		assert.Equal(t, 25, s.SessionMinutes)
		assert.Equal(t, time.Second, s.TickInterval)
		assert.Equal(t, 6, s.GridColumns)
		assert.Equal(t, 0, s.MetricsPort)
		assert.False(t, s.Verbose)

		// Loading never writes a config file.
		_, err := os.Stat(filepath.Join(dir, "config.yaml"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Load From Env", func(t *testing.T) {
		viper.Reset()
		chdirTemp(t)
		t.Setenv("CPS251_TIMER_SESSION_MINUTES", "45")
		t.Setenv("CPS251_TIMER_TICK_INTERVAL", "250ms")

		require.NoError(t, Load(""))
		s := Current()
		assert.Equal(t, 45, s.SessionMinutes)
		assert.Equal(t, 250*time.Millisecond, s.TickInterval)
	})

	t.Run("Load From Dotenv", func(t *testing.T) {
		viper.Reset()
		dir := chdirTemp(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CPS251_GRID_COLUMNS=4\n"), 0o644))
		t.Cleanup(func() { os.Unsetenv("CPS251_GRID_COLUMNS") })

		require.NoError(t, Load(""))
		assert.Equal(t, 4, Current().GridColumns)
	})

	t.Run("Explicit Config File", func(t *testing.T) {
		viper.Reset()
		dir := chdirTemp(t)
		path := filepath.Join(dir, "study.yaml")
		content := "timer:\n  session_minutes: 15\n  tick_interval: 2\ngrid:\n  columns: 8\nverbose: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		require.NoError(t, Load(path))
		s := Current()
		assert.Equal(t, 15, s.SessionMinutes)
		assert.Equal(t, 2*time.Second, s.TickInterval)
		assert.Equal(t, 8, s.GridColumns)
		assert.True(t, s.Verbose)
	})

	t.Run("Fractional Seconds From File", func(t *testing.T) {
		viper.Reset()
		dir := chdirTemp(t)
		path := filepath.Join(dir, "study.yaml")
		require.NoError(t, os.WriteFile(path, []byte("timer:\n  tick_interval: 0.5\n"), 0o644))

		require.NoError(t, Load(path))
		assert.Equal(t, 500*time.Millisecond, Current().TickInterval)
		assert.NoError(t, Validate())
	})

	t.Run("Missing Explicit Config File", func(t *testing.T) {
		viper.Reset()
		dir := chdirTemp(t)

		err := Load(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		viper.Reset()
		dir := chdirTemp(t)
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("key: value: what:\n"), 0o644))

		assert.Error(t, Load(path))
	})
}

func TestLoad_TickIntervalFromEnv(t *testing.T) {
	defer viper.Reset()

	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "Duration", value: "250ms", want: 250 * time.Millisecond},
		{name: "Whole Seconds", value: "2", want: 2 * time.Second},
		{name: "Fractional Seconds", value: "1.5", want: 1500 * time.Millisecond},
		{name: "Half Second", value: "0.5", want: 500 * time.Millisecond},
		{name: "Padded", value: " 3 ", want: 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			chdirTemp(t)
			t.Setenv("CPS251_TIMER_TICK_INTERVAL", tt.value)

			require.NoError(t, Load(""))
			assert.Equal(t, tt.want, Current().TickInterval)
			assert.NoError(t, Validate())
		})
	}
}
