package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"apidiscovery/domain"
	"apidiscovery/helpers"
	"apidiscovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultRegistrationInterval is the pause between two self-registration cycles.
const DefaultRegistrationInterval = 60 * time.Second

// LoopState is the lifecycle state of a RegistrationLoop.
type LoopState int32

const (
	LoopIdle LoopState = iota
	LoopRunning
	LoopCancelled
	LoopTerminated
)

func (s LoopState) String() string {
	switch s {
	case LoopIdle:
		return "idle"
	case LoopRunning:
		return "running"
	case LoopCancelled:
		return "cancelled"
	case LoopTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("LoopState(%d)", int32(s))
	}
}

// RegistrationLoop periodically advertises this process under every supported version.
type RegistrationLoop struct {
	resolver interfaces.Resolver
	config   domain.DiscoveryConfiguration
	interval time.Duration
	logger   log.Logger

	state atomic.Int32
}

// NewRegistrationLoop creates a loop for config. A non-positive interval falls back to
// DefaultRegistrationInterval. Panics on nil resolver or logger and on an empty name or self URL.
func NewRegistrationLoop(resolver interfaces.Resolver, config domain.DiscoveryConfiguration, interval time.Duration, logger log.Logger) *RegistrationLoop {
	helpers.StrPanic(config.Name, "service.registration_loop.go: name is required")
	helpers.StrPanic(config.SelfURL, "service.registration_loop.go: self url is required")
	if interval <= 0 {
		interval = DefaultRegistrationInterval
	}
	return &RegistrationLoop{
		resolver: helpers.NilPanic(resolver, "service.registration_loop.go: resolver is required"),
		config:   config,
		interval: interval,
		logger:   log.With(helpers.NilPanic(logger, "service.registration_loop.go: logger is required"), "component", "registration_loop"),
	}
}

// State reports where the loop is in its lifecycle.
func (l *RegistrationLoop) State() LoopState {
	return LoopState(l.state.Load())
}

// Run registers every supported version, sleeps for the interval and repeats until ctx is done.
// Cancellation is observed before each cycle and during the sleep. Run always returns nil;
// registration failures are logged and retried on the next cycle.
func (l *RegistrationLoop) Run(ctx context.Context) error {
	l.state.Store(int32(LoopRunning))
	defer l.state.Store(int32(LoopTerminated))

	level.Info(l.logger).Log("msg", "self-registration started", "name", l.config.Name, "versions", fmt.Sprint(l.config.SupportedVersions), "interval", l.interval)

	for ctx.Err() == nil {
		_ = l.RegisterSelf(ctx)

		timer := time.NewTimer(l.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
	}

	l.state.Store(int32(LoopCancelled))
	level.Info(l.logger).Log("msg", "self-registration stopped", "name", l.config.Name)
	return nil
}

// RegisterSelf runs one cycle: each supported version is registered in order. A failing version does
// not stop the remaining ones; the failures are logged and returned joined.
func (l *RegistrationLoop) RegisterSelf(ctx context.Context) error {
	var errs []error
	for _, version := range l.config.SupportedVersions {
		if err := l.resolver.Register(ctx, l.config.Name, version, l.config.SelfURL); err != nil {
			level.Error(l.logger).Log("msg", "self-registration failed", "name", l.config.Name, "version", version, "err", err)
			errs = append(errs, fmt.Errorf("register %s %s: %w", l.config.Name, version, err))
			continue
		}
		level.Debug(l.logger).Log("msg", "self-registration sent", "name", l.config.Name, "version", version)
	}
	return errors.Join(errs...)
}
