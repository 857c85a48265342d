// Package metadata stores small key/value settings next to the cached
// users, such as the seed of the current random sequence.
package metadata

import "context"

// KeySeed holds the seed the cached users were fetched with.
const KeySeed = "seed"

type Repository interface {
	// Get returns nil, nil when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
