// Package cache stores expensive intermediate results between runs.
//
// The main consumer is the annotation stage: extracting triples with a remote
// model is slow and billed per call, so its output is cached as JSON keyed by
// a hash of the annotator, model and input text. Rendered artifacts (SVG) are
// cached by graph hash. The graph itself is always rebuilt from the cached
// triples.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory, for CLI use
//   - [NullCache]: stores nothing, used when caching is disabled
//
// # Keys
//
// A [Keyer] derives keys from the inputs that determine a value. Wrap one in
// [NewScopedKeyer] to isolate namespaces (for example per config profile).
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// GetJSON looks up key and decodes the value into v.
// Undecodable entries are deleted and reported as a miss.
func GetJSON(ctx context.Context, c Cache, key string, v any) (bool, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		_ = c.Delete(ctx, key)
		return false, nil
	}
	return true, nil
}

// SetJSON encodes v and stores it under key. It returns the encoded size.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) (int, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	return len(data), c.Set(ctx, key, data, ttl)
}
