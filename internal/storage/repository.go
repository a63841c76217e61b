// ABOUTME: Repository interface for persisting the liftlog state blob.
// ABOUTME: Backends store one serialized document under a fixed key.
package storage

// StateKey is the fixed key the state blob is stored under.
const StateKey = "liftlog_v1"

// Repository persists the serialized application state.
// This interface allows swapping backends (sqlite, badger, json file).
type Repository interface {
	// LoadState returns the stored blob, or nil when nothing has been saved.
	LoadState() ([]byte, error)
	// SaveState replaces the stored blob.
	SaveState(data []byte) error
	Close() error
}
