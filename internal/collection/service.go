package collection

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"anirex/internal/apperr"
	"anirex/internal/metrics"
)

type Service struct {
	repo    Repository
	catalog CatalogReader
	now     func() time.Time
}

func NewService(repo Repository, catalog CatalogReader) *Service {
	return &Service{repo: repo, catalog: catalog, now: time.Now}
}

func requireUser(userID string) error {
	if userID == "" {
		return fmt.Errorf("collection: %w", apperr.ErrAuthRequired)
	}
	return nil
}

// Add stores a snapshot of the catalog item. Adding an item twice refreshes
// the snapshot and its timestamp.
func (s *Service) Add(ctx context.Context, userID string, kind Kind, itemID int) (Entry, error) {
	if err := requireUser(userID); err != nil {
		return Entry{}, err
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return Entry{}, err
	}

	item, err := s.catalog.Get(ctx, itemID)
	if err != nil {
		return Entry{}, err
	}

	e := entryFrom(item, s.now().UTC())
	if err := s.repo.Upsert(ctx, userID, kind, e); err != nil {
		return Entry{}, fmt.Errorf("add to %s: %w", kind, err)
	}
	metrics.CollectionWrites.WithLabelValues(string(kind), "add").Inc()
	return e, nil
}

// Remove is idempotent: removing an absent item succeeds.
func (s *Service) Remove(ctx context.Context, userID string, kind Kind, itemID int) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, kind, strconv.Itoa(itemID)); err != nil {
		return fmt.Errorf("remove from %s: %w", kind, err)
	}
	metrics.CollectionWrites.WithLabelValues(string(kind), "remove").Inc()
	return nil
}

// List returns the entries newest first.
func (s *Service) List(ctx context.Context, userID string, kind Kind) ([]Entry, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	entries, err := s.repo.List(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}
