// Package ratelimiter paces outbound provider calls so that batch
// commands stay under the provider's per-minute request budget.
package ratelimiter

import (
	"log/slog"
	"time"
)

// RateLimiter は固定ウィンドウ方式で呼び出し回数を数え、予算を使い切ったら
// 現在のウィンドウが終わるまでブロックします。単一goroutineからの利用を前提とします。
type RateLimiter struct {
	budget      int           // 1ウィンドウあたりの呼び出し上限
	window      time.Duration // カウントをリセットする周期
	calls       int
	windowStart time.Time
}

// NewRateLimiter は1ウィンドウ（window）あたりbudget回まで許可するRateLimiterを生成します。
func NewRateLimiter(budget int, window time.Duration) *RateLimiter {
	return &RateLimiter{budget: budget, window: window, windowStart: time.Now()}
}

// WaitIfNeeded は1回分の呼び出し枠を消費します。予算を使い切っている場合は
// ウィンドウの残り時間だけ待機してから次のウィンドウを開始します。
func (rl *RateLimiter) WaitIfNeeded() {
	now := time.Now()
	if now.Sub(rl.windowStart) >= rl.window {
		rl.calls = 0
		rl.windowStart = now
	}

	rl.calls++
	if rl.calls <= rl.budget {
		return
	}

	sleep := rl.window - now.Sub(rl.windowStart)
	if sleep > 0 {
		slog.Info("request budget exhausted, pausing", "budget", rl.budget, "sleep", sleep)
		time.Sleep(sleep)
	}
	rl.calls = 1
	rl.windowStart = time.Now()
}
