package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNetwork covers every failure of a live fetch: transport, status, or a malformed body
	ErrNetwork = errors.New("photo service request failed")

	// ErrEmptyResult indicates the fetch failed and no cached snapshot exists
	ErrEmptyResult = errors.New("no photos available")

	// ErrInvalidRequest indicates a malformed request descriptor
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingAPIKey indicates the photo service API key is not configured
	ErrMissingAPIKey = errors.New("photo service API key is not configured")
)
