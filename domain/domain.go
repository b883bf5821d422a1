package domain

import (
	"net/url"
	"time"
)

// EndpointRecord is one advertised service instance stored by the registry.
// LastUpdated is stamped by the registry on every accepted write; callers never supply it.
type EndpointRecord struct {
	Name        string
	Version     string
	Endpoint    string // absolute base URI
	LastUpdated time.Time
}

// Key returns the composite identity of the record.
func (r EndpointRecord) Key() RecordKey {
	return RecordKey{Name: r.Name, Version: r.Version}
}

// RecordKey identifies a record by (name, version). It is comparable and used directly as a map key.
type RecordKey struct {
	Name    string
	Version string
}

// String renders the key for string-keyed stores. Both parts are query-escaped so the ":" separator
// never occurs inside a component.
func (k RecordKey) String() string {
	return url.QueryEscape(k.Name) + ":" + url.QueryEscape(k.Version)
}

// DependencyContract names a downstream service (name + version) a process calls.
type DependencyContract struct {
	Name    string
	Version string
}

// Key returns the registry key the contract resolves through.
func (c DependencyContract) Key() RecordKey {
	return RecordKey{Name: c.Name, Version: c.Version}
}

// DiscoveryConfiguration is the per-process discovery setup.
// ServiceURL is the registry base URL (static bootstrap address); SelfURL is what this process advertises.
type DiscoveryConfiguration struct {
	Name              string
	SupportedVersions []string
	SelfURL           string
	ServiceURL        string
}
