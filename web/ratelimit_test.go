package web

import (
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(1, 3)
	defer rl.Stop()

	for i := range 3 {
		if !rl.Allow("a") {
			t.Fatalf("request %d of the burst was rejected", i)
		}
	}
	if rl.Allow("a") {
		t.Error("request beyond the burst was allowed")
	}
	if !rl.Allow("b") {
		t.Error("another client was rejected")
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	defer rl.Stop()

	rl.Allow("a")
	rl.Allow("b")
	if got := rl.size(); got != 2 {
		t.Fatalf("size() = %d, want 2", got)
	}

	rl.cleanup(time.Now())
	if got := rl.size(); got != 2 {
		t.Errorf("size() after cleanup of active clients = %d, want 2", got)
	}
	rl.cleanup(time.Now().Add(2 * clientIdleThreshold))
	if got := rl.size(); got != 0 {
		t.Errorf("size() after cleanup of idle clients = %d, want 0", got)
	}
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	rl.Stop()
	rl.Stop()
}
