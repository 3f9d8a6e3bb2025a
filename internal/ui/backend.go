package ui

import (
	"context"

	"anirex/internal/catalog"
	"anirex/internal/collection"
	"anirex/internal/identity"
	"anirex/internal/profile"
	"anirex/internal/review"
)

// Backend is what the app needs from the API. *apiclient.Client satisfies it.
type Backend interface {
	Feed(ctx context.Context, cat catalog.Category, page int) ([]catalog.Item, error)
	Search(ctx context.Context, q catalog.Query, page int) ([]catalog.Item, error)
	Anime(ctx context.Context, id string) (catalog.Item, error)
	Reviews(ctx context.Context, itemID string) (review.Listing, error)
	SubmitReview(ctx context.Context, itemID, text string, rating float64) (review.Entry, error)
	Collection(ctx context.Context, kind collection.Kind) ([]collection.Entry, error)
	AddToCollection(ctx context.Context, kind collection.Kind, itemID string) error
	RemoveFromCollection(ctx context.Context, kind collection.Kind, itemID string) error
	Profile(ctx context.Context) (profile.Profile, error)
	UpdateProfile(ctx context.Context, cmd profile.UpdateCommand) (profile.Profile, error)
	Login(ctx context.Context, email, password string, rememberMe bool) (identity.User, error)
	Logout(ctx context.Context) error
}
