package handlers

import (
	"testing"

	"apidiscovery/domain"

	"github.com/stretchr/testify/assert"
)

func TestFromLookupParams(t *testing.T) {
	tests := []struct {
		name     string
		params   LookupParams
		expected domain.RecordKey
	}{
		{name: "valid", params: LookupParams{Name: "weather", Version: "1.0"}, expected: domain.RecordKey{Name: "weather", Version: "1.0"}},
		{name: "kept verbatim", params: LookupParams{Name: " a:b ", Version: "v1"}, expected: domain.RecordKey{Name: " a:b ", Version: "v1"}},
		{name: "empty", params: LookupParams{}, expected: domain.RecordKey{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fromLookupParams(tt.params))
		})
	}
}

func TestFromRegisterRequest(t *testing.T) {
	got := fromRegisterRequest(RegisterRequest{Name: "weather", Version: "1.0", Endpoint: "http://weather:8080"})

	assert.Equal(t, domain.EndpointRecord{Name: "weather", Version: "1.0", Endpoint: "http://weather:8080"}, got)
	assert.True(t, got.LastUpdated.IsZero())
}
