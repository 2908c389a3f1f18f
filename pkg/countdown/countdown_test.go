package countdown

import (
	"testing"
	"time"
)

func TestReadable(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{"one of each unit", 90061000, "1 days, 1 hours, 1 minutes, 1 seconds"},
		{"under a minute", 42000, "42 seconds"},
		{"zero", 0, "0 seconds"},
		{"minutes only", 5*60*1000 + 3000, "5 minutes, 3 seconds"},
		{"hours with zero minutes", 2*3600*1000 + 5000, "2 hours, 0 minutes, 5 seconds"},
		{"days with all zero below", 3 * 86400 * 1000, "3 days, 0 hours, 0 minutes, 0 seconds"},
		{"large", 10*86400*1000 + 23*3600*1000 + 59*60*1000 + 59000, "10 days, 23 hours, 59 minutes, 59 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Readable(time.Duration(tt.ms) * time.Millisecond)
			if got != tt.want {
				t.Errorf("Readable(%dms) = %q, want %q", tt.ms, got, tt.want)
			}
		})
	}
}

func TestRemaining(t *testing.T) {
	now := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	target := time.Date(2025, 1, 6, 1, 1, 1, 0, time.UTC)

	got := Remaining(target, now)
	want := 25*time.Hour + time.Minute + time.Second
	if got != want {
		t.Errorf("Remaining() = %v, want %v", got, want)
	}
}

func TestTickerEmitsAndStops(t *testing.T) {
	target := time.Now().Add(time.Hour)
	ticker := NewTicker(target)
	defer ticker.Stop()

	select {
	case msg, ok := <-ticker.C:
		if !ok {
			t.Fatal("channel closed before first tick")
		}
		if msg == "" {
			t.Error("expected a non-empty countdown string")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no tick received within 3s")
	}

	ticker.Stop()
	// Channel closes after stop; allow the goroutine a moment to exit.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ticker.C:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after Stop")
		}
	}
}

func TestTickerStopTwice(t *testing.T) {
	ticker := NewTicker(time.Now().Add(time.Minute))
	ticker.Stop()
	ticker.Stop() // must not panic
}

func TestTickerPastTargetEmitsZero(t *testing.T) {
	ticker := NewTicker(time.Now().Add(-3 * time.Second))
	defer ticker.Stop()

	select {
	case msg, ok := <-ticker.C:
		if !ok {
			t.Fatal("channel closed before first tick")
		}
		if msg != "0 seconds" {
			t.Errorf("tick past target = %q, want %q", msg, "0 seconds")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no tick received within 3s")
	}
}
