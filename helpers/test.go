package helpers

import "time"

// TestNow returns the fixed clock used by tests that check LastUpdated stamps.
func TestNow() time.Time {
	return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
}
