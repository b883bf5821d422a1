package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"apidiscovery/helpers"
)

// CrudClient reads JSON entities of type T from a discovered dependency.
type CrudClient[T any] struct {
	client *DependencyClient
}

func NewCrudClient[T any](client *DependencyClient) *CrudClient[T] {
	return &CrudClient[T]{
		client: helpers.NilPanic(client, "service.crud_client.go: dependency client is required"),
	}
}

// GetByID fetches {base}/{id} and decodes the body into T.
func (c *CrudClient[T]) GetByID(ctx context.Context, id string) (T, error) {
	var entity T

	resp, err := c.client.Do(ctx, http.MethodGet, "/"+url.PathEscape(id), nil)
	if err != nil {
		return entity, err
	}
	defer resp.Body.Close()

	contract := c.client.Contract()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entity, NewEntityNotFoundError(fmt.Sprintf("%s %s has no entity %q", contract.Name, contract.Version, id), nil)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, resp.Body)
		return entity, NewTransportError(fmt.Sprintf("%s %s answered with status %d", contract.Name, contract.Version, resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(&entity); err != nil {
		return entity, NewTransportError(fmt.Sprintf("decode %s %s response", contract.Name, contract.Version), err)
	}
	return entity, nil
}
