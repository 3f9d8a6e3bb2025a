package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"anirex/internal/apperr"
	"anirex/internal/catalog"
	"anirex/internal/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pagedFeed(pages int) loader.FetchFunc[catalog.Category, catalog.Item] {
	return func(_ context.Context, _ catalog.Category, page int) ([]catalog.Item, error) {
		if page > pages {
			return nil, nil
		}
		score := 8.5
		return []catalog.Item{
			{ID: fmt.Sprintf("%d1", page), Title: fmt.Sprintf("Show %d-a", page), Score: &score},
			{ID: fmt.Sprintf("%d2", page), Title: fmt.Sprintf("Show %d-b", page)},
		}, nil
	}
}

func TestPrintPages_NumbersAcrossPages(t *testing.T) {
	l := loader.New(pagedFeed(3))
	l.Reset(catalog.Trending)
	var buf bytes.Buffer

	require.NoError(t, printPages(context.Background(), &buf, l, 2))

	out := buf.String()
	assert.Contains(t, out, "   1   8.50  11       Show 1-a")
	assert.Contains(t, out, "   4    -    22       Show 2-b")
	assert.NotContains(t, out, "Show 3-a")
	assert.NotContains(t, out, "end of list")
}

func TestPrintPages_StopsAtEnd(t *testing.T) {
	l := loader.New(pagedFeed(1))
	l.Reset(catalog.Popular)
	var buf bytes.Buffer

	require.NoError(t, printPages(context.Background(), &buf, l, 5))

	assert.Contains(t, buf.String(), "end of list")
	assert.Len(t, l.Snapshot().Items, 2)
}

func TestPrintPages_NoResults(t *testing.T) {
	l := loader.New(pagedFeed(0))
	l.Reset(catalog.Upcoming)
	var buf bytes.Buffer

	require.NoError(t, printPages(context.Background(), &buf, l, 1))

	assert.Equal(t, "no results\n", buf.String())
}

func TestPrintPages_PropagatesNetworkFailure(t *testing.T) {
	l := loader.New(func(context.Context, catalog.Category, int) ([]catalog.Item, error) {
		return nil, fmt.Errorf("%w: connection reset", apperr.ErrNetwork)
	})
	l.Reset(catalog.AllTime)

	err := printPages(context.Background(), &bytes.Buffer{}, l, 1)

	assert.ErrorIs(t, err, apperr.ErrNetwork)
}

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) Search(ctx context.Context, q catalog.Query, page int) ([]catalog.Item, error) {
	args := m.Called(ctx, q, page)
	items, _ := args.Get(0).([]catalog.Item)
	return items, args.Error(1)
}

func TestPrintPages_SearchRequestsPagesInOrder(t *testing.T) {
	q := catalog.Query{Text: "frieren", GenreID: 10, Year: 2023}
	m := new(mockSearcher)
	m.On("Search", mock.Anything, q, 1).Return([]catalog.Item{{ID: "52991", Title: "Sousou no Frieren"}}, nil).Once()
	m.On("Search", mock.Anything, q, 2).Return(nil, nil).Once()

	l := loader.New(m.Search)
	l.Reset(q)
	var buf bytes.Buffer

	require.NoError(t, printPages(context.Background(), &buf, l, 3))

	m.AssertExpectations(t)
	assert.Contains(t, buf.String(), "Sousou no Frieren")
	assert.Contains(t, buf.String(), "end of list")
}
