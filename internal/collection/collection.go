// Package collection keeps per-user favorites and watchlist entries.
package collection

import (
	"fmt"
	"time"

	"anirex/internal/apperr"
	"anirex/internal/catalog"
)

type Kind string

const (
	Favorites Kind = "favorites"
	Watchlist Kind = "watchlist"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Favorites, Watchlist:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown collection %q: %w", s, apperr.ErrValidation)
	}
}

// Entry is the item snapshot stored when it was added.
type Entry struct {
	ItemID   string    `json:"item_id"`
	Title    string    `json:"title"`
	ImageURL string    `json:"image_url"`
	Synopsis string    `json:"synopsis"`
	AddedAt  time.Time `json:"added_at"`
}

func entryFrom(item catalog.Item, now time.Time) Entry {
	return Entry{
		ItemID:   item.ID,
		Title:    item.Title,
		ImageURL: item.ImageURL,
		Synopsis: item.Synopsis,
		AddedAt:  now,
	}
}
