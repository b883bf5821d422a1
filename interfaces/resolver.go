package interfaces

import (
	"context"

	"apidiscovery/domain"
)

// Resolver talks to a remote registry. Implemented by adapters.DiscoveryHTTP; used by
// service.RegistrationLoop (Register) and service.EndpointBinder (Resolve).
//
//go:generate moq -stub -out mock/resolver.go -pkg mock . Resolver
type Resolver interface {
	// Resolve looks up the record for (name, version).
	// Returns (record, true, nil) when registered, (zero, false, nil) when the registry reports not found,
	// and (zero, false, err) on validation or transport failure.
	Resolve(ctx context.Context, name, version string) (domain.EndpointRecord, bool, error)

	// Register advertises selfURL under (name, version). A failed attempt is not retried here.
	Register(ctx context.Context, name, version, selfURL string) error
}
