package collection

import (
	"context"

	"anirex/internal/catalog"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=collection
type Repository interface {
	Upsert(ctx context.Context, userID string, kind Kind, e Entry) error
	Delete(ctx context.Context, userID string, kind Kind, itemID string) error
	List(ctx context.Context, userID string, kind Kind) ([]Entry, error)
}

type CatalogReader interface {
	Get(ctx context.Context, id int) (catalog.Item, error)
}
