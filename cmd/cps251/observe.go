package main

import (
	"github.com/MnKimJ/CPS251/internal/selection"
	"github.com/MnKimJ/CPS251/internal/studytimer"
	"github.com/MnKimJ/CPS251/internal/telemetry"
)

// observeGrid attaches logging and metrics to g. Call the result to detach.
func observeGrid(g *selection.Grid) func() {
	stops := []func(){
		g.Subscribe(func(s selection.Snapshot) {
			if s.Cleared {
				telemetry.LogInfo("Selection cleared")
				return
			}
			telemetry.LogDebug("Tile toggled", "index", s.Index, "added", s.Added, "selected", s.Count())
		}),
	}
	if appMetrics != nil {
		stops = append(stops, appMetrics.ObserveGrid(g))
	}
	return stopAll(stops)
}

// observeTimer attaches logging and metrics to t. Call the result to detach.
func observeTimer(t *studytimer.Timer) func() {
	stops := []func(){
		t.Subscribe(func(ev studytimer.Event) {
			switch ev.Kind {
			case studytimer.EventTicked:
				// one per second, too chatty for info
				if ev.State.SecondsRemaining%60 == 0 {
					telemetry.LogDebug("Timer minute elapsed", "remaining", ev.State.SecondsRemaining)
				}
			case studytimer.EventExpired:
				telemetry.LogInfo("Session completed",
					"minutes", ev.State.SessionMinutes,
					"completed", ev.State.CompletedSessions)
			default:
				telemetry.LogDebug("Timer "+ev.Kind.String(),
					"phase", ev.Phase().String(),
					"minutes", ev.State.SessionMinutes,
					"remaining", ev.State.SecondsRemaining,
					"epoch", ev.Epoch)
			}
		}),
	}
	if appMetrics != nil {
		stops = append(stops, appMetrics.ObserveTimer(t))
	}
	return stopAll(stops)
}

func stopAll(stops []func()) func() {
	return func() {
		for _, stop := range stops {
			stop()
		}
	}
}
