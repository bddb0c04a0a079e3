// Package storage defines the key-value port behind the record store and
// its backends. Each collection lives under one key whose value is the
// JSON-encoded array of its records.
package storage

import "context"

// KeyValueStore is the persistence port used by repository.Collection.
// Get reports found=false, with a nil error, when the key is absent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
