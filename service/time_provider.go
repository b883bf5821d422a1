package service

import (
	"time"

	"apidiscovery/helpers"
	"apidiscovery/interfaces"
)

// timeProvider implements interfaces.TimeProvider via the injected now func.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider backed by now. Panics on nil now.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

func (t *timeProvider) Now() time.Time {
	return t.now()
}
