package common

const (
	// RequestIDHeader carries a per-request id from the client to the backend.
	RequestIDHeader = "X-Request-ID"

	// ProviderGoogle and ProviderFacebook are the provider identifiers accepted
	// by the OAuth exchange endpoint.
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)
