package myredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"apidiscovery/domain"
	"apidiscovery/interfaces"
	"apidiscovery/service"

	"github.com/go-redis/redis/v8"
)

// storedRecord is the JSON value kept under each key.
type storedRecord struct {
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	Endpoint    string    `json:"endpoint"`
	LastUpdated time.Time `json:"last_updated"`
}

type redisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewStore creates a Registry Store backed by redis. Keys are written with SETNX and no expiration,
// so the first registration for a key is kept for as long as the redis instance lives.
func NewStore(client redis.UniversalClient, prefix string) interfaces.Store {
	return &redisStore{
		client: client,
		prefix: prefix,
	}
}

func (r *redisStore) Find(ctx context.Context, key domain.RecordKey) (domain.EndpointRecord, error) {
	bytes, err := r.client.Get(ctx, r.generateKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.EndpointRecord{}, service.NewEntityNotFoundError("service is not registered", nil)
	}
	if err != nil {
		return domain.EndpointRecord{}, service.NewInternalServerError("Redis read key error", fmt.Errorf("can't read record (key='%s'), err: %w", key, err))
	}

	var stored storedRecord
	if err := json.Unmarshal(bytes, &stored); err != nil {
		return domain.EndpointRecord{}, service.NewInternalServerError("Redis unmarshal record error", fmt.Errorf("can't unmarshal record (key='%s'), err: %w", key, err))
	}

	return domain.EndpointRecord{
		Name:        stored.Name,
		Version:     stored.Version,
		Endpoint:    stored.Endpoint,
		LastUpdated: stored.LastUpdated,
	}, nil
}

func (r *redisStore) Upsert(ctx context.Context, record domain.EndpointRecord) error {
	bytes, err := json.Marshal(storedRecord{
		Name:        record.Name,
		Version:     record.Version,
		Endpoint:    record.Endpoint,
		LastUpdated: record.LastUpdated,
	})
	if err != nil {
		return service.NewInternalServerError("Redis marshal record error", fmt.Errorf("can't marshal record, err: %w", err))
	}

	// SETNX reports false for an existing key; that is the first-write-wins no-op.
	if err := r.client.SetNX(ctx, r.generateKey(record.Key()), bytes, 0).Err(); err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write record (key='%s'), err: %w", record.Key(), err))
	}

	return nil
}

func (r *redisStore) generateKey(key domain.RecordKey) string {
	return r.prefix + ":" + key.String()
}
