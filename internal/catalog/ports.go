package catalog

import (
	"context"

	"anirex/internal/platform/jikan"
)

//go:generate mockgen -source=ports.go -destination=mock_client_test.go -package=catalog
type Client interface {
	Top(ctx context.Context, typ, filter string, page int) (*jikan.Page, error)
	Upcoming(ctx context.Context, page int) (*jikan.Page, error)
	Search(ctx context.Context, p jikan.SearchParams) (*jikan.Page, error)
	Anime(ctx context.Context, id int) (*jikan.Anime, error)
}
