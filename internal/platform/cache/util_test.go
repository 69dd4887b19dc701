package cache

import (
	"testing"
	"time"
)

func TestTimeUntilMidnightUTC(t *testing.T) {
	t.Parallel()

	duration := TimeUntilMidnightUTC()

	// Duration should always be positive and at most 24 hours
	if duration <= 0 {
		t.Errorf("expected positive duration, got %v", duration)
	}
	if duration > 24*time.Hour {
		t.Errorf("expected duration of at most 24 hours, got %v", duration)
	}
}

func TestTimeUntilMidnightUTC_ReturnsValidDuration(t *testing.T) {
	t.Parallel()

	duration := TimeUntilMidnightUTC()

	now := time.Now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)

	expectedDuration := next.Sub(now)
	diff := duration - expectedDuration
	if diff < 0 {
		diff = -diff
	}

	// Allow 1 second tolerance for test execution time
	if diff > time.Second {
		t.Errorf("duration %v differs from expected %v by more than 1 second", duration, expectedDuration)
	}
}
