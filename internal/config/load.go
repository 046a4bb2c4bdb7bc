package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/MnKimJ/CPS251/internal/studytimer"
	"github.com/MnKimJ/CPS251/internal/ticker"
)

// EnvPrefix is prepended to every environment override, e.g.
// CPS251_TIMER_SESSION_MINUTES.
const EnvPrefix = "CPS251"

// Settings is the typed view of the loaded configuration.
type Settings struct {
	SessionMinutes int
	TickInterval   time.Duration
	GridColumns    int
	Verbose        bool
	LogFile        string
	MetricsPort    int
}

// Load initializes the configuration from file and environment variables.
// A missing default config file is not an error; a missing explicit one is.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config %q: %w", cfgFile, err)
	}

	slog.Debug("Using config file", "path", viper.ConfigFileUsed())
	return nil
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("timer.session_minutes", studytimer.DefaultSessionMinutes)
	viper.SetDefault("timer.tick_interval", ticker.DefaultInterval)
	viper.SetDefault("grid.columns", 6)
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("metrics_port", 0)
}

// Current reads the settings out of viper. Call Validate first.
func Current() Settings {
	return Settings{
		SessionMinutes: viper.GetInt("timer.session_minutes"),
		TickInterval:   durationOrSeconds("timer.tick_interval"),
		GridColumns:    viper.GetInt("grid.columns"),
		Verbose:        viper.GetBool("verbose"),
		LogFile:        viper.GetString("log_file"),
		MetricsPort:    viper.GetInt("metrics_port"),
	}
}

// durationOrSeconds accepts both "500ms" style durations and unitless
// numbers, which are taken as (possibly fractional) seconds.
func durationOrSeconds(key string) time.Duration {
	switch v := viper.Get(key).(type) {
	case time.Duration:
		return v
	case int, int64, float64:
		return secondsToDuration(viper.GetFloat64(key))
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return secondsToDuration(f)
		}
	}
	return viper.GetDuration(key)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
