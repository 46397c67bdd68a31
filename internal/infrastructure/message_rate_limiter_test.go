package infrastructure

import "testing"

func TestMessageRateLimiterBurstThenDeny(t *testing.T) {
	rl := NewMessageRateLimiter(0.0001, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d denied within burst capacity", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatalf("request allowed after burst exhausted")
	}
}

func TestMessageRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewMessageRateLimiter(0.0001, 1)

	if !rl.Allow("10.0.0.1") {
		t.Fatalf("first client denied")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatalf("second client denied, buckets should be independent")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatalf("first client allowed past its bucket")
	}
}

func TestMessageRateLimiterReset(t *testing.T) {
	rl := NewMessageRateLimiter(0.0001, 1)

	rl.Allow("10.0.0.1")
	if rl.Allow("10.0.0.1") {
		t.Fatalf("allowed before reset")
	}
	rl.Reset("10.0.0.1")
	if !rl.Allow("10.0.0.1") {
		t.Fatalf("denied after reset")
	}
}
