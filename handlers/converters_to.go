package handlers

import (
	"apidiscovery/domain"
)

// toEndpointResponse converts a record to the lookup response. LastUpdated is not exposed.
func toEndpointResponse(record domain.EndpointRecord) EndpointResponse {
	return EndpointResponse{
		Name:     record.Name,
		Version:  record.Version,
		Endpoint: record.Endpoint,
	}
}
