package interfaces

import (
	"context"

	"apidiscovery/domain"
)

// Store is the registry's keyed table of endpoint records. Implementations synchronize internally;
// no locks are exposed to callers.
//
//go:generate moq -stub -out mock/store.go -pkg mock . Store
type Store interface {
	// Find returns the record registered under key.
	// Returns:
	// 1) (record, nil) when the key is present;
	// 2) (zero, entity_not_found) when nothing is registered under the exact key;
	// 3) (zero, internal_server_error) when the backing storage fails.
	Find(ctx context.Context, key domain.RecordKey) (domain.EndpointRecord, error)

	// Upsert stores record only if its key is absent; a second write for the same key is a silent no-op.
	// Returns:
	// 1) nil on insert and on duplicate;
	// 2) internal_server_error when the backing storage fails.
	Upsert(ctx context.Context, record domain.EndpointRecord) error
}
