package newsletter

import (
	"context"
	"testing"
	"time"

	"newsdesk/config"
)

func TestMemoryLimiterFixedWindow(t *testing.T) {
	l := NewMemoryLimiter(config.RateLimitMax, config.RateLimitWindow)
	current := time.Now()
	l.now = func() time.Time { return current }

	ctx := context.Background()

	// Exactly 5 requests are accepted within the window.
	for i := 1; i <= config.RateLimitMax; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("Allow error: %v", err)
		}
		if !ok {
			t.Fatalf("request %d rejected; want first %d accepted", i, config.RateLimitMax)
		}
	}

	// The 6th is rejected.
	ok, err := l.Allow(ctx, "1.2.3.4")
	if err != nil {
		t.Fatalf("Allow error: %v", err)
	}
	if ok {
		t.Fatal("6th request within window should be rejected")
	}

	// A different IP is unaffected.
	if ok, _ := l.Allow(ctx, "5.6.7.8"); !ok {
		t.Fatal("unrelated key should not be rate limited")
	}

	// After the window elapses the counter resets.
	current = current.Add(config.RateLimitWindow + time.Minute)
	if ok, _ := l.Allow(ctx, "1.2.3.4"); !ok {
		t.Fatal("request after window expiry should be accepted")
	}
}
