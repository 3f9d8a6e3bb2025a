// Package catalog exposes the remote anime catalog as feeds, search and
// item lookups.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"anirex/internal/apperr"
	"anirex/internal/platform/jikan"
)

// Item is one catalog entry. ID is the MyAnimeList id rendered as text.
type Item struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	ImageURL     string   `json:"image_url"`
	Score        *float64 `json:"score,omitempty"`
	Synopsis     string   `json:"synopsis"`
	EpisodeCount *int     `json:"episode_count,omitempty"`
	Genres       []string `json:"genres"`
}

type Category string

const (
	Trending Category = "trending"
	Popular  Category = "popular"
	Upcoming Category = "upcoming"
	AllTime  Category = "all_time"
)

// Categories is the display order of the home feeds.
var Categories = []Category{Trending, Popular, Upcoming, AllTime}

func (c Category) Label() string {
	switch c {
	case Trending:
		return "Trending Now"
	case Popular:
		return "Popular"
	case Upcoming:
		return "Upcoming"
	case AllTime:
		return "All Time Popular"
	default:
		return string(c)
	}
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q: %w", s, apperr.ErrValidation)
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Genres are the filterable genres with their Jikan ids.
var Genres = []Genre{
	{1, "Action"},
	{2, "Adventure"},
	{4, "Comedy"},
	{8, "Drama"},
	{10, "Fantasy"},
	{14, "Horror"},
	{22, "Romance"},
	{24, "Sci-Fi"},
}

func GenreByName(name string) (Genre, bool) {
	for _, g := range Genres {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return Genre{}, false
}

// Query is a search context. The zero Query lists everything.
type Query struct {
	Text     string  `json:"q,omitempty"`
	GenreID  int     `json:"genre,omitempty"`
	MinScore float64 `json:"min_score,omitempty"`
	Year     int     `json:"year,omitempty"`
}

func (q Query) Validate() error {
	switch {
	case q.GenreID < 0:
		return fmt.Errorf("genre must be positive: %w", apperr.ErrValidation)
	case q.MinScore < 0 || q.MinScore > 10:
		return fmt.Errorf("min_score must be between 0 and 10: %w", apperr.ErrValidation)
	case q.Year != 0 && (q.Year < 1900 || q.Year > 2100):
		return fmt.Errorf("year must be between 1900 and 2100: %w", apperr.ErrValidation)
	}
	return nil
}

const synopsisPreview = 150

// ShortSynopsis truncates s to a preview length, marking the cut with "...".
func ShortSynopsis(s string) string {
	if utf8.RuneCountInString(s) <= synopsisPreview {
		return s
	}
	r := []rune(s)
	return string(r[:synopsisPreview]) + "..."
}

func fromJikan(a jikan.Anime) Item {
	genres := make([]string, 0, len(a.Genres))
	for _, g := range a.Genres {
		genres = append(genres, g.Name)
	}
	return Item{
		ID:           strconv.Itoa(a.MalID),
		Title:        a.Title,
		ImageURL:     a.Images.JPG.ImageURL,
		Score:        a.Score,
		Synopsis:     a.Synopsis,
		EpisodeCount: a.Episodes,
		Genres:       genres,
	}
}

func fromPage(p *jikan.Page) []Item {
	items := make([]Item, 0, len(p.Data))
	for _, a := range p.Data {
		items = append(items, fromJikan(a))
	}
	return items
}
