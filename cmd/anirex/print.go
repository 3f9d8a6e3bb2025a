package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"anirex/internal/catalog"
	"anirex/internal/loader"

	"github.com/urfave/cli/v2"
)

func runBrowse(c *cli.Context) error {
	client, _, err := session(c)
	if err != nil {
		return err
	}
	category := catalog.Trending
	if arg := c.Args().First(); arg != "" {
		if category, err = catalog.ParseCategory(arg); err != nil {
			return cli.Exit(err.Error(), 2)
		}
	}

	l := loader.New(client.Feed)
	l.Reset(category)
	return printPages(c.Context, c.App.Writer, l, c.Int("pages"))
}

func runSearch(c *cli.Context) error {
	client, _, err := session(c)
	if err != nil {
		return err
	}
	q := catalog.Query{
		Text:     strings.Join(c.Args().Slice(), " "),
		MinScore: c.Float64("min-score"),
		Year:     c.Int("year"),
	}
	if name := c.String("genre"); name != "" {
		g, ok := catalog.GenreByName(name)
		if !ok {
			return cli.Exit(fmt.Sprintf("unknown genre %q", name), 2)
		}
		q.GenreID = g.ID
	}
	if err := q.Validate(); err != nil {
		return cli.Exit(err.Error(), 2)
	}

	l := loader.New(client.Search)
	l.Reset(q)
	return printPages(c.Context, c.App.Writer, l, c.Int("pages"))
}

// printPages loads up to pages pages and prints each batch as it lands.
func printPages[Q any](ctx context.Context, w io.Writer, l *loader.Loader[Q, catalog.Item], pages int) error {
	if pages < 1 {
		pages = 1
	}
	printed := 0
	for i := 0; i < pages; i++ {
		out, err := l.LoadNext(ctx)
		if err != nil {
			return err
		}
		items := l.Snapshot().Items
		writeItems(w, items[printed:], printed)
		printed = len(items)
		if out.State == loader.Exhausted {
			break
		}
	}

	if snap := l.Snapshot(); snap.Exhausted() {
		if len(snap.Items) == 0 {
			fmt.Fprintln(w, "no results")
		} else {
			fmt.Fprintln(w, "end of list")
		}
	}
	return nil
}

func writeItems(w io.Writer, items []catalog.Item, offset int) {
	for i, it := range items {
		score := "  -  "
		if it.Score != nil {
			score = fmt.Sprintf("%5.2f", *it.Score)
		}
		fmt.Fprintf(w, "%4d  %s  %-8s %s\n", offset+i+1, score, it.ID, it.Title)
	}
}
