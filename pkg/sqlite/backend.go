// Package sqlite provides the public API for the SQLite catalog backend.
// It exposes the factory function while keeping implementation details
// internal.
package sqlite

import (
	"github.com/shelterpaws/cattery/internal/sqlite"
	"github.com/shelterpaws/cattery/pkg/types"
)

// NewStore creates a new SQLite-backed record store.
// The store is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".cattery-db",
//	}.WithDefaults())
//	defer store.Detach()
func NewStore() types.Store {
	return sqlite.NewBackend()
}
