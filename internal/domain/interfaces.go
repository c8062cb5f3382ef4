package domain

import "context"

// PhotoClient performs exactly one upstream request per call.
// Every failure mode (transport, status, decode) is reported as an error wrapping ErrNetwork.
type PhotoClient interface {
	Fetch(ctx context.Context, req Request) ([]Photo, PageInfo, error)
}

// Store is a small persistent key-value store.
// Set is a full replace of the value; readers see either the old or the new value.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
