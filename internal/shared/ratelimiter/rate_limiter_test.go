package ratelimiter

import (
	"testing"
	"time"
)

// TestWaitIfNeeded_UnderLimit は上限未満の呼び出しがブロックされないことを検証します。
func TestWaitIfNeeded_UnderLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(5, time.Minute)

	start := time.Now()
	for i := 0; i < 5; i++ {
		rl.WaitIfNeeded()
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("expected no blocking under the limit, waited %v", elapsed)
	}
}

// TestWaitIfNeeded_OverLimit は上限超過時に待機してカウントがリセットされることを検証します。
func TestWaitIfNeeded_OverLimit(t *testing.T) {
	t.Parallel()

	// 短いintervalで上限超過の待機を観測する
	rl := NewRateLimiter(2, 200*time.Millisecond)

	rl.WaitIfNeeded()
	rl.WaitIfNeeded()

	start := time.Now()
	rl.WaitIfNeeded()
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("expected to wait past the interval, waited only %v", elapsed)
	}

	if rl.calls != 1 {
		t.Errorf("expected call count reset to 1, got %d", rl.calls)
	}
}

// TestWaitIfNeeded_ResetsAfterInterval はinterval経過後にカウントがリセットされることを検証します。
func TestWaitIfNeeded_ResetsAfterInterval(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 50*time.Millisecond)

	rl.WaitIfNeeded()
	time.Sleep(60 * time.Millisecond)

	start := time.Now()
	rl.WaitIfNeeded()
	if elapsed := time.Since(start); elapsed > 30*time.Millisecond {
		t.Errorf("expected no blocking after interval reset, waited %v", elapsed)
	}
}
