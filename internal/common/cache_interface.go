package common

import "time"

// CacheInterface is the contract both cache backends implement. Values are
// stored as JSON so Redis and the in-memory fallback behave identically:
// Get decodes the stored document into dest and reports whether the key
// was present.
type CacheInterface interface {
	// Set stores a value under key for the given duration.
	Set(key string, value interface{}, duration time.Duration)

	// Get decodes the cached value for key into dest.
	// Returns false on a miss or a decode failure.
	Get(key string, dest interface{}) bool

	// Delete removes a key.
	Delete(key string)

	// Close releases any underlying connections.
	Close() error
}
