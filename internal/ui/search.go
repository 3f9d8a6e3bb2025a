package ui

import (
	"fmt"
	"strconv"
	"strings"

	"anirex/internal/apperr"
	"anirex/internal/catalog"
)

// parseSearch turns the search bar text into a query. Filters are written
// as key:value tokens, e.g. "mecha genre:action score:7.5 year:2019".
// Everything else is free text.
func parseSearch(input string) (catalog.Query, error) {
	var q catalog.Query
	var text []string
	for _, tok := range strings.Fields(input) {
		key, value, ok := strings.Cut(tok, ":")
		if !ok || value == "" {
			text = append(text, tok)
			continue
		}
		switch strings.ToLower(key) {
		case "genre":
			g, found := catalog.GenreByName(value)
			if !found {
				return catalog.Query{}, fmt.Errorf("unknown genre %q: %w", value, apperr.ErrValidation)
			}
			q.GenreID = g.ID
		case "score":
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return catalog.Query{}, fmt.Errorf("score %q: %w", value, apperr.ErrValidation)
			}
			q.MinScore = f
		case "year":
			y, err := strconv.Atoi(value)
			if err != nil {
				return catalog.Query{}, fmt.Errorf("year %q: %w", value, apperr.ErrValidation)
			}
			q.Year = y
		default:
			text = append(text, tok)
		}
	}
	q.Text = strings.Join(text, " ")
	if err := q.Validate(); err != nil {
		return catalog.Query{}, err
	}
	return q, nil
}
