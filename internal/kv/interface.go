// Package kv provides the synchronous string key-value stores the
// persistence gateway runs on. Implementations guarantee single-key
// atomicity only; there is no transaction spanning multiple keys.
package kv

// Store is an abstract synchronous key-value store with string values.
type Store interface {
	// Get returns the value for key, or ok=false if the key is absent.
	Get(key string) (value string, ok bool)
	// Set writes the value for key, replacing any previous value.
	Set(key, value string) error
	// Remove deletes the key. Removing an absent key is a no-op.
	Remove(key string) error
}
