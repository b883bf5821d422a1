package myredis

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisConfig is the connection setup of the redis-backed registry store.
// A zero Timeout keeps the driver's dial, read and write defaults.
type RedisConfig struct {
	Addr    string
	Timeout time.Duration
}

// Options returns the client options implied by the config.
func (c RedisConfig) Options() []ConfigOption {
	if c.Timeout <= 0 {
		return nil
	}
	return []ConfigOption{WithTimeout(c.Timeout)}
}

// ConfigOption adjusts the parsed redis options before the client is built.
type ConfigOption func(*redis.Options)

// WithTimeout bounds dialing, reads and writes to d.
func WithTimeout(d time.Duration) ConfigOption {
	return func(o *redis.Options) {
		o.DialTimeout = d
		o.ReadTimeout = d
		o.WriteTimeout = d
	}
}

// NewRedisUniversalClient parses a redis:// URL and builds a universal client from it.
func NewRedisUniversalClient(redisAddr string, options ...ConfigOption) (redis.UniversalClient, error) {
	redisOptions, err := redis.ParseURL(redisAddr)
	if err != nil {
		return nil, fmt.Errorf("cant parse redis url: %w", err)
	}
	for _, opt := range options {
		opt(redisOptions)
	}
	return redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:        []string{redisOptions.Addr},
		DB:           redisOptions.DB,
		Username:     redisOptions.Username,
		Password:     redisOptions.Password,
		DialTimeout:  redisOptions.DialTimeout,
		ReadTimeout:  redisOptions.ReadTimeout,
		WriteTimeout: redisOptions.WriteTimeout,
		MaxRetries:   redisOptions.MaxRetries,
	}), nil
}
