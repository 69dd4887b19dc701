package cache

import (
	"time"
)

// TimeUntilMidnightUTC は次のUTC0時までの期間を返します。
// 日足データはUTCの日付境界で確定するため、これをキャッシュTTLに使います。
func TimeUntilMidnightUTC() time.Duration {
	now := time.Now().UTC()

	// 次の0時を計算
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)

	return next.Sub(now)
}
