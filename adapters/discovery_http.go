package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"apidiscovery/domain"
	"apidiscovery/helpers"
	"apidiscovery/interfaces"
	"apidiscovery/service"
)

// DefaultDiscoveryTimeout bounds a single call to the registry.
const DefaultDiscoveryTimeout = 5 * time.Second

// DiscoveryHTTP creates an interfaces.Resolver that talks to the registry over HTTP:
// GET baseURL/discovery?name=&version= and PUT baseURL/discovery. Panics on empty baseURL or nil client.
//
// baseURL is the registry base URL from static configuration (e.g. http://discovery:8080). timeout is the
// per-call deadline, DefaultDiscoveryTimeout when not positive.
//
// Called from cmd/weather for the registration loop and the endpoint binder.
func DiscoveryHTTP(baseURL string, client *http.Client, timeout time.Duration) interfaces.Resolver {
	if timeout <= 0 {
		timeout = DefaultDiscoveryTimeout
	}
	return &discoveryHTTP{
		baseURL: strings.TrimSuffix(helpers.StrPanic(baseURL, "adapters.discovery_http.go: baseURL is required"), "/"),
		client:  helpers.NilPanic(client, "adapters.discovery_http.go: http client is required"),
		timeout: timeout,
	}
}

type discoveryHTTP struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// recordPayload is the JSON shape of the lookup response and of the register request body.
type recordPayload struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Endpoint string `json:"endpoint"`
}

// Resolve performs GET baseURL/discovery. 404 is the registry's answer for an unregistered key and is
// returned as (zero, false, nil) rather than an error.
//
// Returns: (record, true, nil) on 200; bad_parameter on 400 carrying the registry's description;
// transport_error on any other status, network error or undecodable body.
func (d *discoveryHTTP) Resolve(ctx context.Context, name, version string) (domain.EndpointRecord, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	query := url.Values{}
	query.Set("name", name)
	query.Set("version", version)
	reqURL := d.baseURL + "/discovery?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.EndpointRecord{}, false, service.NewInternalServerError("build lookup request", err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return domain.EndpointRecord{}, false, service.NewTransportError("registry lookup failed", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.EndpointRecord{}, false, nil
	default:
		return domain.EndpointRecord{}, false, statusError("lookup", resp)
	}

	var payload recordPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.EndpointRecord{}, false, service.NewTransportError("registry lookup returned an undecodable body", err)
	}
	if payload.Endpoint == "" {
		return domain.EndpointRecord{}, false, service.NewTransportError("registry lookup response missing endpoint", nil)
	}
	return domain.EndpointRecord{
		Name:     payload.Name,
		Version:  payload.Version,
		Endpoint: payload.Endpoint,
	}, true, nil
}

// Register performs PUT baseURL/discovery with the record as JSON. Any 2xx is success; the call is
// not retried.
func (d *discoveryHTTP) Register(ctx context.Context, name, version, selfURL string) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	body, err := json.Marshal(recordPayload{Name: name, Version: version, Endpoint: selfURL})
	if err != nil {
		return service.NewInternalServerError("encode register request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, d.baseURL+"/discovery", bytes.NewReader(body))
	if err != nil {
		return service.NewInternalServerError("build register request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return service.NewTransportError("registry register failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError("register", resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// statusError classifies a non-success registry answer, keeping the registry's description when it sent one.
func statusError(op string, resp *http.Response) error {
	var body service.ErrResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)

	message := fmt.Sprintf("registry %s returned %d", op, resp.StatusCode)
	if body.Description != "" {
		message += ": " + body.Description
	}
	if resp.StatusCode == http.StatusBadRequest {
		return service.NewBadParameterError(message, nil)
	}
	return service.NewTransportError(message, nil)
}
