package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/MnKimJ/CPS251/internal/studytimer"
)

// Validate checks the loaded values and reports every problem at once.
func Validate() error {
	var errs []string

	if viper.IsSet("timer.session_minutes") {
		minutes := viper.GetInt("timer.session_minutes")
		if !studytimer.IsPreset(minutes) {
			errs = append(errs, fmt.Sprintf("timer.session_minutes must be one of %v, got: %d", studytimer.Presets, minutes))
		}
	}

	if viper.IsSet("timer.tick_interval") {
		if d := durationOrSeconds("timer.tick_interval"); d <= 0 {
			errs = append(errs, fmt.Sprintf("timer.tick_interval must be positive, got: %v", d))
		}
	}

	if viper.IsSet("grid.columns") {
		cols := viper.GetInt("grid.columns")
		if cols < 1 || cols > 24 {
			errs = append(errs, fmt.Sprintf("grid.columns must be between 1 and 24, got: %d", cols))
		}
	}

	// 0 disables the metrics endpoint
	if viper.IsSet("metrics_port") {
		port := viper.GetInt("metrics_port")
		if port < 0 || port > 65535 {
			errs = append(errs, fmt.Sprintf("metrics_port must be between 0 and 65535, got: %d", port))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
