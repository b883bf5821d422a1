package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"apidiscovery/adapters/memstore"
	"apidiscovery/helpers"
	"apidiscovery/service"

	"github.com/go-kit/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	validator, err := NewOpenAPIValidator()
	require.NoError(t, err)

	registry := service.NewRegistry(memstore.NewStore(), service.NewTimeProvider(helpers.TestNow))

	e := echo.New()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(validator)
	service.RegisterErrorHandler(e, log.NewNopLogger())
	RegisterHandlers(e, NewHTTPServer(registry, log.NewNopLogger()))
	return e
}

func lookup(e *echo.Echo, name, version string) *httptest.ResponseRecorder {
	query := url.Values{}
	query.Set("name", name)
	query.Set("version", version)
	req := httptest.NewRequest(http.MethodGet, "/discovery?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func register(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/discovery", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerRecord(e *echo.Echo, name, version, endpoint string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(RegisterRequest{Name: name, Version: version, Endpoint: endpoint})
	return register(e, string(body))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) service.ErrResponse {
	t.Helper()
	var body service.ErrResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Description)
	assert.NotEmpty(t, body.TraceID)
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), body.TraceID)
	assert.Equal(t, rec.Header().Get(service.HeaderTraceParent), body.TraceID)
	return body
}

func TestNewHTTPServer_Panics(t *testing.T) {
	registry := service.NewRegistry(memstore.NewStore(), service.NewTimeProvider(helpers.TestNow))
	assert.PanicsWithValue(t, "handlers.http.go: logger is required", func() {
		NewHTTPServer(registry, nil)
	})
	assert.PanicsWithValue(t, "handlers.http.go: registry is required", func() {
		NewHTTPServer(nil, log.NewNopLogger())
	})
}

func TestLoadOpenAPI(t *testing.T) {
	doc, err := LoadOpenAPI()
	require.NoError(t, err)
	require.NotNil(t, doc.Paths.Find("/discovery"))
	assert.NotNil(t, doc.Paths.Find("/discovery").Get)
	assert.NotNil(t, doc.Paths.Find("/discovery").Put)
}

func TestHTTPServer_RegisterThenLookup(t *testing.T) {
	e := newTestEcho(t)

	rec := registerRecord(e, "weather", "1.0", "http://weather:8080")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = lookup(e, "weather", "1.0")
	require.Equal(t, http.StatusOK, rec.Code)
	var got EndpointResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, EndpointResponse{Name: "weather", Version: "1.0", Endpoint: "http://weather:8080"}, got)
	assert.NotContains(t, rec.Body.String(), "lastUpdated")
}

func TestHTTPServer_LookupUnregisteredVersion(t *testing.T) {
	e := newTestEcho(t)
	require.Equal(t, http.StatusOK, registerRecord(e, "weather", "1.0", "http://weather:8080").Code)

	rec := lookup(e, "weather", "2.0")
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "service is not registered", body.Description)
}

func TestHTTPServer_LookupInvalidParameters(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantMsg string
	}{
		{name: "version 1", query: "name=weather&version=1", wantMsg: "version"},
		{name: "version v1.0", query: "name=weather&version=v1.0", wantMsg: "version"},
		{name: "version 1.0.1", query: "name=weather&version=1.0.1", wantMsg: "version"},
		{name: "missing version", query: "name=weather", wantMsg: "version"},
		{name: "missing name", query: "version=1.0", wantMsg: "name"},
		{name: "blank name", query: "name=%20%20&version=1.0", wantMsg: "name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t)
			req := httptest.NewRequest(http.MethodGet, "/discovery?"+tt.query, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Contains(t, body.Description, tt.wantMsg)
		})
	}
}

func TestHTTPServer_RegisterInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "relative endpoint", body: `{"name":"weather","version":"1.0","endpoint":"/weather"}`},
		{name: "endpoint without host", body: `{"name":"weather","version":"1.0","endpoint":"http://"}`},
		{name: "endpoint with spaces", body: `{"name":"weather","version":"1.0","endpoint":"http://weather host:8080"}`},
		{name: "empty endpoint", body: `{"name":"weather","version":"1.0","endpoint":""}`},
		{name: "bad version", body: `{"name":"weather","version":"1","endpoint":"http://weather:8080"}`},
		{name: "missing name", body: `{"version":"1.0","endpoint":"http://weather:8080"}`},
		{name: "not json", body: `{"name":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t)
			rec := register(e, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			decodeError(t, rec)

			assert.Equal(t, http.StatusNotFound, lookup(e, "weather", "1.0").Code)
		})
	}
}

func TestHTTPServer_FirstWriteWins(t *testing.T) {
	e := newTestEcho(t)

	require.Equal(t, http.StatusOK, registerRecord(e, "weather", "1.0", "http://first:8080").Code)
	require.Equal(t, http.StatusOK, registerRecord(e, "weather", "1.0", "http://second:8080").Code)

	var got EndpointResponse
	require.NoError(t, json.Unmarshal(lookup(e, "weather", "1.0").Body.Bytes(), &got))
	assert.Equal(t, "http://first:8080", got.Endpoint)
}

func TestHTTPServer_SeparatorDoesNotCollide(t *testing.T) {
	e := newTestEcho(t)

	require.Equal(t, http.StatusOK, registerRecord(e, "a-b", "1.0", "http://ab:8080").Code)
	require.Equal(t, http.StatusOK, registerRecord(e, "a", "1.0", "http://a:8080").Code)
	require.Equal(t, http.StatusOK, registerRecord(e, "a:b", "1.0", "http://colon:8080").Code)

	for name, endpoint := range map[string]string{"a-b": "http://ab:8080", "a": "http://a:8080", "a:b": "http://colon:8080"} {
		var got EndpointResponse
		rec := lookup(e, name, "1.0")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, endpoint, got.Endpoint)
	}
}

func TestHTTPServer_ConcurrentRegistrations(t *testing.T) {
	e := newTestEcho(t)

	const n = 50
	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = registerRecord(e, fmt.Sprintf("svc-%d", i), "1.0", fmt.Sprintf("http://svc-%d:8080", i)).Code
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.Equal(t, http.StatusOK, codes[i])
		var got EndpointResponse
		rec := lookup(e, fmt.Sprintf("svc-%d", i), "1.0")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, fmt.Sprintf("http://svc-%d:8080", i), got.Endpoint)
	}
}

func TestHTTPServer_ConcurrentSameKey(t *testing.T) {
	e := newTestEcho(t)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			registerRecord(e, "weather", "1.0", fmt.Sprintf("http://weather-%d:8080", i))
		}(i)
	}
	wg.Wait()

	var first EndpointResponse
	require.NoError(t, json.Unmarshal(lookup(e, "weather", "1.0").Body.Bytes(), &first))
	assert.True(t, strings.HasPrefix(first.Endpoint, "http://weather-"))
	for i := 0; i < 5; i++ {
		var again EndpointResponse
		require.NoError(t, json.Unmarshal(lookup(e, "weather", "1.0").Body.Bytes(), &again))
		assert.Equal(t, first, again)
	}
}

func TestHTTPServer_UnknownRoute(t *testing.T) {
	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Not Found", body.Description)
}
