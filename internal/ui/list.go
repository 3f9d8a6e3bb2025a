package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"anirex/internal/catalog"
	"anirex/internal/loader"

	tea "github.com/charmbracelet/bubbletea"
)

// searchPane is the pane id of the search results list.
const searchPane = -1

// listQuery selects either a category feed or a search.
type listQuery struct {
	Category catalog.Category
	Search   catalog.Query
}

func fetchPage(b Backend) loader.FetchFunc[listQuery, catalog.Item] {
	return func(ctx context.Context, q listQuery, page int) ([]catalog.Item, error) {
		if q.Category != "" {
			return b.Feed(ctx, q.Category, page)
		}
		return b.Search(ctx, q.Search, page)
	}
}

// pane is one scrollable list backed by a Loader.
type pane struct {
	id      int
	title   string
	list    *loader.Loader[listQuery, catalog.Item]
	cursor  int
	pending bool
}

func newPane(id int, title string, b Backend, q listQuery, timeout time.Duration) *pane {
	l := loader.New(fetchPage(b), loader.WithFetchTimeout(timeout))
	l.Reset(q)
	return &pane{id: id, title: title, list: l}
}

// loadNext returns a command that asks the loader for the next page, or nil
// when one is already outstanding or the list is exhausted.
func (p *pane) loadNext(ctx context.Context) tea.Cmd {
	snap := p.list.Snapshot()
	if p.pending || snap.State != loader.Idle {
		return nil
	}
	p.pending = true
	l, id := p.list, p.id
	return func() tea.Msg {
		out, err := l.LoadNext(ctx)
		return PageLoaded{Pane: id, Outcome: out, Err: err}
	}
}

// maybeLoad triggers a fetch when the cursor is near the end of the list.
func (p *pane) maybeLoad(ctx context.Context, threshold int) tea.Cmd {
	items := p.list.Snapshot().Items
	if !loader.ShouldLoad(p.cursor, len(items), threshold) {
		return nil
	}
	return p.loadNext(ctx)
}

func (p *pane) move(delta int) {
	n := len(p.list.Snapshot().Items)
	p.cursor += delta
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *pane) selected() (catalog.Item, bool) {
	items := p.list.Snapshot().Items
	if p.cursor < 0 || p.cursor >= len(items) {
		return catalog.Item{}, false
	}
	return items[p.cursor], true
}

func (p *pane) reset(q listQuery) {
	p.list.Reset(q)
	p.cursor = 0
	p.pending = false
}

func formatScore(s *float64) string {
	if s == nil {
		return "  -  "
	}
	return fmt.Sprintf("%4.2f", *s)
}

// render draws rows around the cursor so it stays visible in height lines.
func (p *pane) render(width, height int, spin string) string {
	snap := p.list.Snapshot()
	var b strings.Builder

	footer := ""
	switch {
	case snap.Fetching() || p.pending:
		footer = Muted.Render(spin + " loading...")
	case snap.Exhausted():
		if len(snap.Items) == 0 {
			footer = EndOfList.Render("no results")
		} else {
			footer = EndOfList.Render("end of list")
		}
	}

	rows := height
	if footer != "" {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	start := 0
	if p.cursor >= rows {
		start = p.cursor - rows + 1
	}
	end := start + rows
	if end > len(snap.Items) {
		end = len(snap.Items)
	}

	for i := start; i < end; i++ {
		it := snap.Items[i]
		line := ScoreBadge.Render(formatScore(it.Score)) + "  " + it.Title
		if width > 4 && len([]rune(line)) > width-2 {
			line = string([]rune(line)[:width-2])
		}
		if i == p.cursor {
			b.WriteString(SelectedItem.Render(line))
		} else {
			b.WriteString(NormalItem.Render(line))
		}
		b.WriteString("\n")
	}
	if footer != "" {
		b.WriteString(footer)
		b.WriteString("\n")
	}
	return b.String()
}
