// Package kv defines the key-value capability the engine persists
// through. The core logic never talks to a concrete backend; it is
// handed a Store, which keeps it testable and makes multi-session or
// server-side variants possible.
package kv

import "context"

// Store is a minimal durable key-value capability.
type Store interface {
	// Get returns the value for key. The second return reports
	// whether the key exists; an absent key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the value for key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
