package service

import (
	"context"
	"fmt"

	"apidiscovery/domain"
	"apidiscovery/helpers"
	"apidiscovery/interfaces"
)

// Registry is the lookup/registration contract layered over a Store. Input is validated before the
// store is touched and LastUpdated is stamped on every accepted write.
type Registry struct {
	store   interfaces.Store
	clock   interfaces.TimeProvider
	metrics *RegistryMetrics
}

// RegistryOption configures optional Registry collaborators.
type RegistryOption func(*Registry)

// WithMetrics makes the registry count its operations in m.
func WithMetrics(m *RegistryMetrics) RegistryOption {
	return func(r *Registry) {
		r.metrics = m
	}
}

// NewRegistry creates a Registry. Panics on nil store or clock.
func NewRegistry(store interfaces.Store, clock interfaces.TimeProvider, opts ...RegistryOption) *Registry {
	r := &Registry{
		store: helpers.NilPanic(store, "service.registry.go: store is required"),
		clock: helpers.NilPanic(clock, "service.registry.go: clock is required"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the record registered for (name, version).
// Returns bad_parameter on invalid input and entity_not_found when nothing is registered.
func (r *Registry) Lookup(ctx context.Context, name, version string) (record domain.EndpointRecord, err error) {
	defer func() { r.metrics.observe(operationLookup, err) }()

	if err := ValidateKey(name, version); err != nil {
		return domain.EndpointRecord{}, err
	}

	record, err = r.store.Find(ctx, domain.RecordKey{Name: name, Version: version})
	if err != nil {
		return domain.EndpointRecord{}, fmt.Errorf("lookup failed to find %s %s, err: %w", name, version, err)
	}
	return record, nil
}

// Register stores endpoint under (name, version) unless a record already exists for that key.
func (r *Registry) Register(ctx context.Context, name, version, endpoint string) (err error) {
	defer func() { r.metrics.observe(operationRegister, err) }()

	if err := ValidateKey(name, version); err != nil {
		return err
	}
	if err := ValidateEndpoint(endpoint); err != nil {
		return err
	}

	record := domain.EndpointRecord{
		Name:        name,
		Version:     version,
		Endpoint:    endpoint,
		LastUpdated: r.clock.Now(),
	}
	if err := r.store.Upsert(ctx, record); err != nil {
		return fmt.Errorf("register failed to upsert %s %s, err: %w", name, version, err)
	}
	return nil
}
