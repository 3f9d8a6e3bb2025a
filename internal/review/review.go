// Package review stores user reviews of catalog items and summarises
// their ratings.
package review

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"anirex/internal/apperr"
	"anirex/internal/catalog"
)

const (
	MinRating = 1.0
	MaxRating = 10.0

	// AnonymousName is shown when a reviewer has no display name.
	AnonymousName = "Anonymous"

	maxTextLength = 5000
)

type Entry struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"item_id"`
	Text       string    `json:"text"`
	Rating     float64   `json:"rating"`
	AuthorID   string    `json:"user_id"`
	AuthorName string    `json:"user_name"`
	CreatedAt  time.Time `json:"date"`
}

// Summary is the aggregate over the entries of one item.
type Summary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Author identifies who is submitting. A zero ID means no one is signed in.
type Author struct {
	ID          string
	DisplayName string
}

//go:generate mockgen -source=review.go -destination=mock_repository_test.go -package=review
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	ListByItem(ctx context.Context, itemID string) ([]Entry, error)
}

// ItemResolver confirms a catalog item exists before a review is stored.
type ItemResolver interface {
	Get(ctx context.Context, id int) (catalog.Item, error)
}

// Aggregate returns the mean rating rounded to one decimal, or 0 for no
// entries. Rounding works on the exact binary value of the mean, so 8.45
// (stored just below) gives 8.4. Exact ties such as 8.25 go away from zero.
// Ratings are not validated here.
func Aggregate(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += e.Rating
	}
	return roundTenth(sum / float64(len(entries)))
}

func roundTenth(v float64) float64 {
	// A tenth-tie is representable only as an odd multiple of 1/4.
	if q := v * 4; q == math.Trunc(q) && math.Mod(q, 2) != 0 {
		return math.Round(v*10) / 10
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return math.Round(v*10) / 10
	}
	return r
}

func Summarize(entries []Entry) Summary {
	return Summary{Average: Aggregate(entries), Count: len(entries)}
}

// ValidateRating accepts ratings in [1, 10], bounds included.
func ValidateRating(r float64) error {
	if math.IsNaN(r) || r < MinRating || r > MaxRating {
		return fmt.Errorf("rating must be between %g and %g: %w", MinRating, MaxRating, apperr.ErrValidation)
	}
	return nil
}

// DisplayName falls back to AnonymousName for blank names.
func DisplayName(name string) string {
	if name == "" {
		return AnonymousName
	}
	return name
}
