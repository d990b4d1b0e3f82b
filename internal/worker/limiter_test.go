package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_BurstThenThrottle(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow() {
		t.Fatal("First call should be allowed")
	}
	if l.Allow() {
		t.Error("Second immediate call should be throttled at 1 rps")
	}
}

func TestLimiter_WaitHonorsCancellation(t *testing.T) {
	l := NewLimiter(0.001, 1)
	l.Allow() // drain the burst

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx); err == nil {
		t.Error("Expected Wait to fail once the context expires")
	}
}

func TestLimiter_InvalidRateClamped(t *testing.T) {
	l := NewLimiter(0, 0)
	if !l.Allow() {
		t.Error("Clamped limiter should still allow a call")
	}
}
