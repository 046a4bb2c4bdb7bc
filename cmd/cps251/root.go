package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MnKimJ/CPS251/internal/config"
	"github.com/MnKimJ/CPS251/internal/metrics"
	"github.com/MnKimJ/CPS251/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// appMetrics is nil until initConfig runs; observers skip it when unset.
var appMetrics *metrics.Metrics

var closeLog = func() error { return nil }

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cps251",
	Short: "CPS251 study tools: a selectable button grid and a study timer",
	Long: `cps251 bundles two small terminal apps.

  grid   a grid of 24 colored tiles you can select and clear
  timer  a countdown study timer with 5/15/25/45 minute sessions

Run without a subcommand to pick one from a menu.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = closeLog()
	},
	RunE: runLauncher,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'cps251 --help' for usage.")
		exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Append JSON logs to this file")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig reads in config file and ENV variables, validates them and sets
// up logging and metrics for the command about to run.
func initConfig(cmd *cobra.Command, args []string) error {
	if err := config.Load(cfgFile); err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}
	settings := config.Current()

	closeLog = telemetry.InitLogger(settings.Verbose, settings.LogFile, logWriter(cmd))

	appMetrics = metrics.NewMetrics()
	if settings.MetricsPort > 0 {
		addr := fmt.Sprintf(":%d", settings.MetricsPort)
		go func() {
			if err := telemetry.StartMetricsServer(commandContext(cmd), addr, appMetrics.Handler()); err != nil {
				telemetry.LogError("Metrics server stopped", err, "addr", addr)
			}
		}()
	}

	telemetry.LogDebug("Configuration loaded",
		"session_minutes", settings.SessionMinutes,
		"tick_interval", settings.TickInterval,
		"grid_columns", settings.GridColumns)
	return nil
}

// logWriter keeps logs off stdout while a TUI owns the terminal. Plain mode
// logs to stderr.
func logWriter(cmd *cobra.Command) io.Writer {
	if f := cmd.Flags().Lookup("plain"); f != nil && f.Value.String() == "true" {
		return os.Stderr
	}
	return io.Discard
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
