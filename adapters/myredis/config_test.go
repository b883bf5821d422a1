package myredis

import (
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisUniversalClient(t *testing.T) {
	t.Run("valid URL returns client", func(t *testing.T) {
		client, err := NewRedisUniversalClient("redis://localhost:6379")
		require.NoError(t, err)
		require.NotNil(t, client)
		defer client.Close()
	})

	t.Run("invalid URL returns error", func(t *testing.T) {
		client, err := NewRedisUniversalClient("://invalid")
		require.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("options are applied", func(t *testing.T) {
		var applied bool
		client, err := NewRedisUniversalClient("redis://localhost:6379", func(o *redis.Options) {
			applied = true
		})
		require.NoError(t, err)
		require.NotNil(t, client)
		defer client.Close()
		assert.True(t, applied)
	})
}

func TestRedisConfig_Options(t *testing.T) {
	assert.Empty(t, RedisConfig{Addr: "redis://localhost:6379"}.Options())

	opts := RedisConfig{Addr: "redis://localhost:6379", Timeout: 2 * time.Second}.Options()
	require.Len(t, opts, 1)

	var o redis.Options
	opts[0](&o)
	assert.Equal(t, 2*time.Second, o.DialTimeout)
	assert.Equal(t, 2*time.Second, o.ReadTimeout)
	assert.Equal(t, 2*time.Second, o.WriteTimeout)
}
