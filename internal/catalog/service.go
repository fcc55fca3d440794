// Package catalog is the service layer between the record store and its
// callers: first-run seeding, the filterable view projection, and the
// editor form that validates and normalizes submissions.
package catalog

import (
	"context"
	"log/slog"

	"github.com/shelterpaws/cattery/internal/blob"
	"github.com/shelterpaws/cattery/internal/metrics"
	"github.com/shelterpaws/cattery/pkg/types"
)

// Service wires the record store, the media blob store, and the static
// reference data together.
type Service struct {
	store types.Store
	blobs blob.Store
	cfg   types.Config
	log   *slog.Logger
}

// NewService creates a catalog service. A nil logger falls back to the
// process default.
func NewService(store types.Store, blobs blob.Store, cfg types.Config, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, blobs: blobs, cfg: cfg, log: log}
}

// Locations returns the configured location list, wildcard included, in
// display order.
func (s *Service) Locations() []types.Location {
	return s.cfg.Locations
}

// Blobs returns the media blob store for display layers that stream blob
// content.
func (s *Service) Blobs() blob.Store {
	return s.blobs
}

// Load returns the full catalog, seeding the store first when it is empty.
// Seeding is one-time and idempotent: once any record exists it never runs
// again. A failed seed insert aborts seeding and is logged; the catalog
// proceeds with whatever was inserted.
func (s *Service) Load(ctx context.Context) ([]*types.Cat, error) {
	cats, err := s.store.List(ctx)
	metrics.ObserveOp("list", err)
	if err != nil {
		return nil, err
	}
	if len(cats) > 0 {
		return cats, nil
	}

	for _, cat := range SeedCats() {
		if err := s.store.Insert(ctx, cat); err != nil {
			s.log.Error("seeding catalog aborted", "cat", cat.Name, "error", err)
			break
		}
		metrics.SeededCats.Inc()
	}

	cats, err = s.store.List(ctx)
	metrics.ObserveOp("list", err)
	if err != nil {
		return nil, err
	}
	s.log.Info("catalog seeded", "cats", len(cats))
	return cats, nil
}

// Get returns one cat by ID.
func (s *Service) Get(ctx context.Context, id string) (*types.Cat, error) {
	cat, err := s.store.Get(ctx, id)
	metrics.ObserveOp("get", err)
	return cat, err
}

// Delete removes a cat after explicit confirmation. A declined
// confirmation is a no-op, not an error, matching the delete-on-missing-id
// policy of the store.
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return nil
	}
	err := s.store.Delete(ctx, id)
	metrics.ObserveOp("delete", err)
	return err
}
