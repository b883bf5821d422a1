package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"apidiscovery/adapters/myredis"
)

// Env variable names.
const (
	envHTTPPort     = "SERVICE_PORT_HTTP"
	envStoreBackend = "STORE_BACKEND"
	envRedisAddr    = "REDIS_ADDR"
	envRedisTimeout = "REDIS_TIMEOUT_MS"
)

// Store backends selectable through STORE_BACKEND.
const (
	backendMemory = "memory"
	backendRedis  = "redis"
)

type DiscoveryConfig struct {
	HTTPPort     int
	StoreBackend string
	Redis        myredis.RedisConfig
}

// LoadConfig loads configuration from environment variables.
// SERVICE_PORT_HTTP is required; REDIS_ADDR is required only when STORE_BACKEND is redis, where the
// optional REDIS_TIMEOUT_MS bounds redis dial, read and write.
func LoadConfig() (*DiscoveryConfig, error) {
	httpPortStr := os.Getenv(envHTTPPort)
	if httpPortStr == "" {
		return nil, fmt.Errorf("%s is required", envHTTPPort)
	}
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envHTTPPort, err)
	}
	if httpPort <= 0 || httpPort > 65535 {
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, httpPort)
	}

	backend := strings.ToLower(strings.TrimSpace(os.Getenv(envStoreBackend)))
	if backend == "" {
		backend = backendMemory
	}

	config := &DiscoveryConfig{
		HTTPPort:     httpPort,
		StoreBackend: backend,
	}
	switch backend {
	case backendMemory:
	case backendRedis:
		redisAddr := os.Getenv(envRedisAddr)
		if redisAddr == "" {
			return nil, fmt.Errorf("%s is required when %s is %s", envRedisAddr, envStoreBackend, backendRedis)
		}
		config.Redis.Addr = redisAddr
		if raw := strings.TrimSpace(os.Getenv(envRedisTimeout)); raw != "" {
			ms, err := strconv.Atoi(raw)
			if err != nil || ms <= 0 {
				return nil, fmt.Errorf("%s must be a positive number of milliseconds, got %q", envRedisTimeout, raw)
			}
			config.Redis.Timeout = time.Duration(ms) * time.Millisecond
		}
	default:
		return nil, fmt.Errorf("%s must be %s or %s, got %q", envStoreBackend, backendMemory, backendRedis, backend)
	}

	return config, nil
}
