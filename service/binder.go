package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"apidiscovery/domain"
	"apidiscovery/helpers"
	"apidiscovery/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/singleflight"
)

// EndpointBinder lazily binds dependency contracts to base addresses. The first call scoped to a
// contract resolves it through the registry; the address is then kept for the life of the process.
// Bindings are never refreshed, so a dependency that moves keeps being called at its first address.
type EndpointBinder struct {
	resolver interfaces.Resolver
	logger   log.Logger

	group singleflight.Group

	mu    sync.RWMutex
	bound map[domain.RecordKey]*url.URL
}

// NewEndpointBinder creates a binder. Panics on nil resolver or logger.
func NewEndpointBinder(resolver interfaces.Resolver, logger log.Logger) *EndpointBinder {
	return &EndpointBinder{
		resolver: helpers.NilPanic(resolver, "service.binder.go: resolver is required"),
		logger:   log.With(helpers.NilPanic(logger, "service.binder.go: logger is required"), "component", "endpoint_binder"),
		bound:    make(map[domain.RecordKey]*url.URL),
	}
}

// BaseURL returns the bound base address for contract, resolving it on first use. Concurrent first
// calls for one contract share a single resolution. Failures are not cached: the failing call gets
// the error and a later call resolves again.
//
// Returns dependency_unresolved when the registry has no usable record, and transport_error when
// the registry could not be reached.
func (b *EndpointBinder) BaseURL(ctx context.Context, contract domain.DependencyContract) (*url.URL, error) {
	key := contract.Key()
	if base, ok := b.lookup(key); ok {
		return base, nil
	}

	ch := b.group.DoChan(key.String(), func() (any, error) {
		if base, ok := b.lookup(key); ok {
			return base, nil
		}
		// detached from the first caller so its cancellation does not fail the other waiters
		base, err := b.resolve(context.WithoutCancel(ctx), contract)
		if err != nil {
			return nil, err
		}
		b.mu.Lock()
		b.bound[key] = base
		b.mu.Unlock()
		return base, nil
	})

	select {
	case <-ctx.Done():
		return nil, NewTransportError(fmt.Sprintf("resolving %s %s cancelled", contract.Name, contract.Version), ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return cloneURL(res.Val.(*url.URL)), nil
	}
}

func (b *EndpointBinder) lookup(key domain.RecordKey) (*url.URL, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	base, ok := b.bound[key]
	if !ok {
		return nil, false
	}
	return cloneURL(base), true
}

func (b *EndpointBinder) resolve(ctx context.Context, contract domain.DependencyContract) (*url.URL, error) {
	record, found, err := b.resolver.Resolve(ctx, contract.Name, contract.Version)
	if err != nil {
		level.Error(b.logger).Log("msg", "dependency resolution failed", "name", contract.Name, "version", contract.Version, "err", err)
		if IsBadParameterError(err) {
			// the registry rejected the contract, not the caller's request
			return nil, NewDiscoveryError(ErrDependencyUnresolved, fmt.Sprintf("registry rejected dependency %s %s", contract.Name, contract.Version), err)
		}
		return nil, fmt.Errorf("resolve %s %s: %w", contract.Name, contract.Version, err)
	}
	if !found {
		level.Error(b.logger).Log("msg", "dependency is not registered", "name", contract.Name, "version", contract.Version)
		return nil, NewDependencyUnresolvedError(fmt.Sprintf("could not locate service %s %s", contract.Name, contract.Version), nil)
	}

	base, err := url.Parse(record.Endpoint)
	if err != nil || !base.IsAbs() || base.Host == "" {
		return nil, NewDependencyUnresolvedError(
			fmt.Sprintf("service %s %s registered an unusable endpoint %q", contract.Name, contract.Version, record.Endpoint),
			err,
		)
	}

	level.Info(b.logger).Log("msg", "dependency bound", "name", contract.Name, "version", contract.Version, "endpoint", base.String())
	return base, nil
}

// Client returns an HTTP client scoped to contract. Panics on nil httpClient.
func (b *EndpointBinder) Client(contract domain.DependencyContract, httpClient *http.Client) *DependencyClient {
	return &DependencyClient{
		binder:   b,
		contract: contract,
		client:   helpers.NilPanic(httpClient, "service.binder.go: http client is required"),
	}
}

// DependencyClient issues HTTP calls against the address bound to one dependency contract.
type DependencyClient struct {
	binder   *EndpointBinder
	contract domain.DependencyContract
	client   *http.Client
}

// Contract returns the dependency this client is scoped to.
func (c *DependencyClient) Contract() domain.DependencyContract {
	return c.contract
}

// Do sends method path (relative to the bound base address) with body. The call fails without
// touching the network when the contract cannot be bound.
func (c *DependencyClient) Do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	base, err := c.binder.BaseURL(ctx, c.contract)
	if err != nil {
		return nil, err
	}

	target := joinPath(base, path)
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, NewInternalServerError("build dependency request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, NewTransportError(fmt.Sprintf("call to %s %s failed", c.contract.Name, c.contract.Version), err)
	}
	return resp, nil
}

// joinPath appends path to the base address, keeping any path prefix of the base. path is taken as
// already escaped, so an escaped segment such as "a%2Fb" stays a single segment.
func joinPath(base *url.URL, path string) string {
	rawPath, rawQuery, _ := strings.Cut(path, "?")
	escaped := strings.TrimSuffix(base.EscapedPath(), "/") + "/" + strings.TrimPrefix(rawPath, "/")

	out := *base
	out.RawQuery = rawQuery
	decoded, err := url.PathUnescape(escaped)
	if err != nil {
		out.Path = escaped
		out.RawPath = ""
		return out.String()
	}
	out.Path = decoded
	out.RawPath = escaped
	return out.String()
}

func cloneURL(u *url.URL) *url.URL {
	c := *u
	if u.User != nil {
		user := *u.User
		c.User = &user
	}
	return &c
}
