package interfaces

import "time"

// TimeProvider supplies the current time for record timestamps.
// Injected so tests can use a fixed clock instead of time.Now().
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	// Now returns current time (UTC in prod; fixed in tests).
	Now() time.Time
}
