package storage

import (
	"context"
	"errors"
)

// Snapshot keys. Each store's whole collection is serialized under a fixed
// name; there are no partial updates and no versioning.
const (
	KeyUsers         = "users"
	KeyCurrentUser   = "current_user"
	KeyDrivers       = "drivers"
	KeyCurrentDriver = "current_driver"
	KeyRides         = "rides"
)

// ErrNoSnapshot is returned by Load when no snapshot exists under the key.
var ErrNoSnapshot = errors.New("no snapshot")

// Gateway persists whole JSON snapshots under fixed string keys.
type Gateway interface {
	// Load retrieves the snapshot stored under key.
	// Returns ErrNoSnapshot when the key has never been written.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save stores the snapshot under key, replacing any previous value.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes the snapshot stored under key.
	Delete(ctx context.Context, key string) error
}
