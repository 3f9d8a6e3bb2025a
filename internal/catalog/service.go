package catalog

import (
	"context"
	"fmt"

	"anirex/internal/apperr"
	"anirex/internal/platform/jikan"
)

type Service struct {
	client Client
}

func NewService(client Client) *Service {
	return &Service{client: client}
}

func checkPage(page int) error {
	if page < 1 {
		return fmt.Errorf("page must be at least 1: %w", apperr.ErrValidation)
	}
	return nil
}

// Feed returns one page of a category feed. An empty result marks the end.
func (s *Service) Feed(ctx context.Context, c Category, page int) ([]Item, error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}

	var (
		p   *jikan.Page
		err error
	)
	switch c {
	case Trending:
		p, err = s.client.Top(ctx, "tv", "airing", page)
	case Popular:
		p, err = s.client.Top(ctx, "tv", "", page)
	case Upcoming:
		p, err = s.client.Upcoming(ctx, page)
	case AllTime:
		p, err = s.client.Top(ctx, "", "", page)
	default:
		return nil, fmt.Errorf("unknown category %q: %w", c, apperr.ErrValidation)
	}
	if err != nil {
		return nil, fmt.Errorf("feed %s page %d: %w", c, page, err)
	}
	return fromPage(p), nil
}

func (s *Service) Search(ctx context.Context, q Query, page int) ([]Item, error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	p, err := s.client.Search(ctx, jikan.SearchParams{
		Query:    q.Text,
		GenreID:  q.GenreID,
		MinScore: q.MinScore,
		Year:     q.Year,
		Page:     page,
	})
	if err != nil {
		return nil, fmt.Errorf("search page %d: %w", page, err)
	}
	return fromPage(p), nil
}

// Get resolves one item. Unknown ids yield apperr.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int) (Item, error) {
	if id <= 0 {
		return Item{}, fmt.Errorf("invalid id %d: %w", id, apperr.ErrValidation)
	}
	a, err := s.client.Anime(ctx, id)
	if err != nil {
		return Item{}, fmt.Errorf("anime %d: %w", id, err)
	}
	return fromJikan(*a), nil
}
