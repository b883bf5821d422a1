package handlers

import (
	"apidiscovery/domain"
)

// fromLookupParams converts LookupParams to domain.RecordKey. The registry validates the key.
func fromLookupParams(params LookupParams) domain.RecordKey {
	return domain.RecordKey{Name: params.Name, Version: params.Version}
}

// fromRegisterRequest converts RegisterRequest to domain.EndpointRecord without LastUpdated,
// which the registry stamps after validating the record.
func fromRegisterRequest(req RegisterRequest) domain.EndpointRecord {
	return domain.EndpointRecord{
		Name:     req.Name,
		Version:  req.Version,
		Endpoint: req.Endpoint,
	}
}
