package types

import (
	"context"
	"errors"
)

// Store is the durable record store for cat profiles. Callers attach to a
// backend, perform CRUD, and detach when done. Every mutating call persists
// the full record set before returning, so a process restart observes the
// mutation.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrDetached.
	Detach() error

	// List returns every stored cat, newest first by creation time.
	// An empty store yields an empty slice, never an error.
	List(ctx context.Context) ([]*Cat, error)

	// Get retrieves the cat with the given ID.
	// Returns ErrNotFound if no cat exists with that ID.
	Get(ctx context.Context, id string) (*Cat, error)

	// Insert adds a new cat. When cat.ID is empty a UUID v7 is generated
	// and written back to the struct. Returns ErrDuplicateID if the ID is
	// already taken.
	Insert(ctx context.Context, cat *Cat) error

	// Update replaces the stored cat sharing the same ID in full. The ID
	// itself never changes. Returns ErrNotFound if no such cat exists.
	Update(ctx context.Context, cat *Cat) error

	// Delete removes the cat with the given ID. Deleting an ID that does
	// not exist is a no-op, not an error.
	Delete(ctx context.Context, id string) error
}

// Store lifecycle errors.
var (
	ErrDetached        = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Record operation errors.
var (
	ErrNotFound    = errors.New("cat not found")
	ErrDuplicateID = errors.New("cat id already exists")
	ErrInvalidID   = errors.New("invalid cat id")
	ErrInvalidData = errors.New("invalid cat data")
)
