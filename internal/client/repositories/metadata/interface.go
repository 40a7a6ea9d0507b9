// Package metadata stores small string values under fixed keys in the
// client's local SQLite database.
package metadata

import "context"

// Repository is a durable key-value store. Get returns ("", false, nil)
// for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
}
