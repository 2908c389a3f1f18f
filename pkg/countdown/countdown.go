// Package countdown renders the remaining time until a campaign boundary and
// drives the once-per-second refresh behind the streaming countdown endpoint.
package countdown

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Remaining returns the delta from now until target. Callers are expected to
// only ask about targets still in the future; a negative delta is passed
// through unchanged.
func Remaining(target, now time.Time) time.Duration {
	return target.Sub(now)
}

// Readable renders a duration as a day/hour/minute/second breakdown using
// cascading floor division from days downward. Leading units that are zero
// are dropped, e.g. "2 hours, 0 minutes, 5 seconds".
func Readable(d time.Duration) string {
	ms := d.Milliseconds()

	days := ms / msPerDay
	hours := ms / msPerHour % 24
	minutes := ms / msPerMinute % 60
	seconds := ms / msPerSecond % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d days", days))
	}
	if len(parts) > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hours", hours))
	}
	if len(parts) > 0 || minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minutes", minutes))
	}
	parts = append(parts, fmt.Sprintf("%d seconds", seconds))

	return strings.Join(parts, ", ")
}

// Ticker recomputes the readable countdown to a fixed target once per second
// and delivers it on C. Every Ticker must be released with Stop; C is closed
// once the ticker is stopped.
type Ticker struct {
	C <-chan string

	target time.Time
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// NewTicker starts a countdown toward target, emitting once per second.
func NewTicker(target time.Time) *Ticker {
	c := make(chan string, 1)
	t := &Ticker{
		C:      c,
		target: target,
		ticker: time.NewTicker(time.Second),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(c)
		for {
			select {
			case now := <-t.ticker.C:
				// The tick that crosses the target reads as zero, never
				// as a negative breakdown.
				remaining := Remaining(t.target, now)
				if remaining < 0 {
					remaining = 0
				}
				// Drop the tick if the receiver is behind; the next
				// one carries a fresher value anyway.
				select {
				case c <- Readable(remaining):
				default:
				}
			case <-t.done:
				return
			}
		}
	}()

	return t
}

// Stop halts the periodic recomputation. Safe to call more than once.
func (t *Ticker) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
