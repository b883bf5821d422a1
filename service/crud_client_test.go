package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cat struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newCatServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/cats/7", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"7","name":"Tom"}`))
	})
	mux.HandleFunc("/cats/broken", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	})
	mux.HandleFunc("/cats/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewCrudClient_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.crud_client.go: dependency client is required", func() {
		NewCrudClient[cat](nil)
	})
}

func TestCrudClient_GetByID(t *testing.T) {
	srv := newCatServer(t)
	binder := NewEndpointBinder(resolverFor(map[string]string{"cat 1.0": srv.URL + "/cats"}), log.NewNopLogger())
	client := NewCrudClient[cat](binder.Client(catContract, srv.Client()))

	tests := []struct {
		name         string
		id           string
		expected     cat
		expectedCode string
	}{
		{name: "found", id: "7", expected: cat{ID: "7", Name: "Tom"}},
		{name: "missing", id: "8", expectedCode: ErrEntityNotFound},
		{name: "server error", id: "boom", expectedCode: ErrTransport},
		{name: "undecodable", id: "broken", expectedCode: ErrTransport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.GetByID(context.Background(), tt.id)
			if tt.expectedCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, ToErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCrudClient_GetByIDUnresolved(t *testing.T) {
	binder := NewEndpointBinder(resolverFor(nil), log.NewNopLogger())
	client := NewCrudClient[cat](binder.Client(catContract, http.DefaultClient))

	_, err := client.GetByID(context.Background(), "7")
	require.Error(t, err)
	assert.True(t, IsDependencyUnresolvedError(err))
}

func TestCrudClient_GetByIDKeepsIDInOneSegment(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"id":"x"}`))
	}))
	defer srv.Close()

	binder := NewEndpointBinder(resolverFor(map[string]string{"cat 1.0": srv.URL + "/cats"}), log.NewNopLogger())
	client := NewCrudClient[cat](binder.Client(catContract, srv.Client()))

	tests := []struct {
		id       string
		wantPath string
	}{
		{id: "a/b", wantPath: "/cats/a%2Fb"},
		{id: "100%", wantPath: "/cats/100%25"},
		{id: "what?", wantPath: "/cats/what%3F"},
		{id: "../x", wantPath: "/cats/..%2Fx"},
		{id: "tom", wantPath: "/cats/tom"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			_, err := client.GetByID(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, gotPath)
		})
	}
}
