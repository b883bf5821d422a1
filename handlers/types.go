package handlers

// LookupParams are the query parameters of GET /discovery.
type LookupParams struct {
	Name    string `form:"name" json:"name"`
	Version string `form:"version" json:"version"`
}

// RegisterRequest is the body of PUT /discovery.
type RegisterRequest struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Endpoint string `json:"endpoint"`
}

// EndpointResponse is the body of a successful GET /discovery.
type EndpointResponse struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Endpoint string `json:"endpoint"`
}
