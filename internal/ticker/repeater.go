// Package ticker runs an action on a fixed interval until it is stopped.
package ticker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrAlreadyRunning is returned by Start while a previous run is active.
var ErrAlreadyRunning = errors.New("repeater already running")

// Action is called once per interval. Returning false ends the run.
type Action func(now time.Time) bool

// Repeater calls an Action every interval between Start and Stop.
//
// Stop is synchronous: once it returns the action will not be called again
// for that run, even if a tick was already pending.
type Repeater struct {
	interval time.Duration
	action   Action

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRepeater(cfg *Config, action Action) *Repeater {
	interval := DefaultInterval
	if cfg != nil && cfg.Interval > 0 {
		interval = cfg.Interval
	}
	return &Repeater{interval: interval, action: action}
}

func (r *Repeater) Interval() time.Duration { return r.interval }

// Start begins a new run. It ends when ctx is cancelled, Stop is called, or
// the action returns false.
func (r *Repeater) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.activeLocked() {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	r.gen++
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done

	slog.Debug("repeater started", "interval", r.interval, "run", r.gen)
	go r.loop(ctx, cancel, r.gen, done)
	return nil
}

// Stop ends the current run and waits for its goroutine to exit. It must not
// be called from inside the action; return false instead.
func (r *Repeater) Stop() {
	r.mu.Lock()
	if r.done == nil {
		r.mu.Unlock()
		return
	}
	r.gen++
	r.cancel()
	done := r.done
	r.mu.Unlock()

	<-done
}

// Running reports whether a run is in progress.
func (r *Repeater) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeLocked()
}

// Done is closed when the current run ends. It is nil before the first Start.
func (r *Repeater) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

func (r *Repeater) activeLocked() bool {
	if r.done == nil {
		return false
	}
	select {
	case <-r.done:
		return false
	default:
		return true
	}
}

func (r *Repeater) loop(ctx context.Context, cancel context.CancelFunc, gen uint64, done chan struct{}) {
	defer close(done)
	defer cancel()

	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("repeater stopped", "run", gen)
			return
		case now := <-t.C:
			r.mu.Lock()
			if r.gen != gen || ctx.Err() != nil {
				r.mu.Unlock()
				return
			}
			keep := r.action(now)
			r.mu.Unlock()

			if !keep {
				slog.Debug("repeater finished", "run", gen)
				return
			}
		}
	}
}
