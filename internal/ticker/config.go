package ticker

import "time"

// DefaultInterval is the countdown resolution.
const DefaultInterval = time.Second

// Config holds the repeat interval. A zero Interval means DefaultInterval.
type Config struct {
	Interval time.Duration
}
