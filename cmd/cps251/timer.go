package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/MnKimJ/CPS251/internal/config"
	"github.com/MnKimJ/CPS251/internal/studytimer"
	"github.com/MnKimJ/CPS251/internal/telemetry"
	"github.com/MnKimJ/CPS251/internal/ticker"
	"github.com/MnKimJ/CPS251/internal/ui"
)

var (
	timerLength presetValue
	timerPlain  bool
	timerAsk    bool
)

// askOne is replaced in tests.
var askOne = survey.AskOne

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Start the study timer",
	Long: `Starts a countdown study timer. Sessions are 5, 15, 25 or 45 minutes;
the default comes from timer.session_minutes (25).

With --plain the countdown is printed line by line instead of drawn as a
TUI, which is handy in scripts or when the terminal has no alt screen.`,
	Args: cobra.NoArgs,
	RunE: runTimer,
}

func init() {
	rootCmd.AddCommand(timerCmd)
	timerCmd.Flags().VarP(&timerLength, "length", "l", "Session length in minutes (5, 15, 25 or 45)")
	timerCmd.Flags().BoolVar(&timerPlain, "plain", false, "Print the countdown instead of opening the TUI")
	timerCmd.Flags().BoolVar(&timerAsk, "ask", false, "Prompt for the session length")
}

func runTimer(cmd *cobra.Command, args []string) error {
	settings := config.Current()

	minutes := settings.SessionMinutes
	if cmd.Flags().Changed("length") {
		minutes = int(timerLength)
	}
	if timerAsk {
		chosen, err := askSessionLength(minutes)
		if err != nil {
			return err
		}
		minutes = chosen
	}

	t, err := studytimer.New(minutes)
	if err != nil {
		return fmt.Errorf("failed to create timer: %w", err)
	}
	defer observeTimer(t)()

	if timerPlain {
		return runPlainTimer(commandContext(cmd), cmd.OutOrStdout(), t, settings.TickInterval)
	}

	p := newProgram(ui.NewTimerModel(t, settings.TickInterval))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running study timer: %w", err)
	}
	return nil
}

func presetLabel(minutes int) string {
	return fmt.Sprintf("%d minutes", minutes)
}

func askSessionLength(current int) (int, error) {
	options := make([]string, len(studytimer.Presets))
	for i, p := range studytimer.Presets {
		options[i] = presetLabel(p)
	}

	var choice string
	prompt := &survey.Select{
		Message: "Session length:",
		Options: options,
		Default: presetLabel(current),
	}
	if err := askOne(prompt, &choice); err != nil {
		return 0, fmt.Errorf("session length prompt: %w", err)
	}

	n, err := strconv.Atoi(strings.TrimSuffix(choice, " minutes"))
	if err != nil || !studytimer.IsPreset(n) {
		return 0, fmt.Errorf("%w: %q", studytimer.ErrUnknownPreset, choice)
	}
	return n, nil
}

// runPlainTimer runs one session to completion, printing a line per tick.
// SIGINT or ctx cancellation resets the timer and returns.
func runPlainTimer(ctx context.Context, w io.Writer, t *studytimer.Timer, interval time.Duration) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	out := termenv.NewOutput(w)
	epoch := t.Start()
	fmt.Fprintln(w, plainLine(out, t))

	r := ticker.NewRepeater(&ticker.Config{Interval: interval}, func(time.Time) bool {
		res := t.Tick(epoch)
		if res != studytimer.TickStale {
			fmt.Fprintln(w, plainLine(out, t))
		}
		return res == studytimer.TickCounted
	})
	if err := r.Start(ctx); err != nil {
		return fmt.Errorf("failed to start countdown: %w", err)
	}
	<-r.Done()
	r.Stop()

	st := t.State()
	if st.Running {
		t.Reset()
		telemetry.LogInfo("Session interrupted", "minutes", st.SessionMinutes, "remaining", st.SecondsRemaining)
		fmt.Fprintln(w, "Session interrupted.")
		return nil
	}

	done := out.String(fmt.Sprintf("Completed Sessions: %d", st.CompletedSessions)).Bold()
	fmt.Fprintln(w, done)
	return nil
}

func plainLine(out *termenv.Output, t *studytimer.Timer) string {
	clock := out.String(t.Clock()).Foreground(out.Color("#04B575")).Bold()
	return fmt.Sprintf("%s  %d%% Complete", clock, t.Progress())
}
