package review

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"anirex/internal/apperr"
	"anirex/internal/metrics"

	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	items ItemResolver
	now   func() time.Time
}

func NewService(repo Repository, items ItemResolver) *Service {
	return &Service{repo: repo, items: items, now: time.Now}
}

// SubmitCmd carries user input. Rating is a pointer so a missing rating
// can be told apart from zero.
type SubmitCmd struct {
	ItemID string
	Text   string
	Rating *float64
}

// Listing is the reviews of one item, newest first, with their summary.
type Listing struct {
	Entries []Entry `json:"reviews"`
	Summary Summary `json:"summary"`
}

// Submit validates and stores a review. Authentication and input checks
// happen before the catalog or the repository is touched. Reviews of
// unknown items fail with the catalog's NotFound.
func (s *Service) Submit(ctx context.Context, author Author, cmd SubmitCmd) (Entry, error) {
	if author.ID == "" {
		return Entry{}, apperr.ErrAuthRequired
	}

	text := strings.TrimSpace(cmd.Text)
	switch {
	case strings.TrimSpace(cmd.ItemID) == "":
		return Entry{}, fmt.Errorf("item id is required: %w", apperr.ErrValidation)
	case text == "":
		return Entry{}, fmt.Errorf("review text is required: %w", apperr.ErrValidation)
	case utf8.RuneCountInString(text) > maxTextLength:
		return Entry{}, fmt.Errorf("review text must be at most %d characters: %w", maxTextLength, apperr.ErrValidation)
	case cmd.Rating == nil:
		return Entry{}, fmt.Errorf("rating is required: %w", apperr.ErrValidation)
	}
	if err := ValidateRating(*cmd.Rating); err != nil {
		return Entry{}, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(cmd.ItemID))
	if err != nil || id <= 0 {
		return Entry{}, fmt.Errorf("invalid item id %q: %w", cmd.ItemID, apperr.ErrValidation)
	}
	if _, err := s.items.Get(ctx, id); err != nil {
		return Entry{}, fmt.Errorf("resolve item %d: %w", id, err)
	}

	e := Entry{
		ID:         uuid.NewString(),
		ItemID:     strconv.Itoa(id),
		Text:       text,
		Rating:     *cmd.Rating,
		AuthorID:   author.ID,
		AuthorName: DisplayName(strings.TrimSpace(author.DisplayName)),
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, &e); err != nil {
		return Entry{}, fmt.Errorf("create review: %w", err)
	}
	metrics.ReviewsSubmitted.Inc()
	return e, nil
}

func (s *Service) List(ctx context.Context, itemID string) (Listing, error) {
	if strings.TrimSpace(itemID) == "" {
		return Listing{}, fmt.Errorf("item id is required: %w", apperr.ErrValidation)
	}
	entries, err := s.repo.ListByItem(ctx, itemID)
	if err != nil {
		return Listing{}, fmt.Errorf("list reviews: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return Listing{Entries: entries, Summary: Summarize(entries)}, nil
}
