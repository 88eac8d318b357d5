package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"screenfind/internal/media"
	"screenfind/internal/typeahead"
)

// liveResultLimit caps how many matches a live update prints per query.
const liveResultLimit = 8

// clientSearchFunc adapts the API client into a typeahead search function.
func clientSearchFunc(client *Client) typeahead.SearchFunc {
	return func(_ context.Context, query string) ([]media.Item, error) {
		results, err := client.Search(query, 1)
		if err != nil {
			return nil, err
		}
		items := make([]media.Item, len(results.Items))
		for i, it := range results.Items {
			items[i] = media.Item{
				ID:         it.ID,
				Source:     media.Source(it.Source),
				Type:       media.Type(it.Type),
				Title:      it.Title,
				Year:       it.Year,
				Rating:     it.Rating,
				GenreNames: it.Genres,
			}
		}
		return items, nil
	}
}

// runLiveSearch reads queries line by line and prints debounced results as
// they settle. An empty line ends the session.
func runLiveSearch(in io.Reader, out io.Writer, search typeahead.SearchFunc, opts ...typeahead.Option) error {
	ta := typeahead.New(search, opts...)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for r := range ta.Results() {
			printLiveResult(out, r)
		}
	}()

	fmt.Fprintln(out, "Live search: type a query, empty line quits.")
	scanner := bufio.NewScanner(in)
	ctx := context.Background()
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		ta.Input(ctx, line)
	}

	ta.Close()
	<-done
	return scanner.Err()
}

func printLiveResult(out io.Writer, r typeahead.Result) {
	switch {
	case r.Err != nil:
		fmt.Fprintf(out, "search failed: %v\n", r.Err)
	case len(r.Items) == 0:
		if r.Query != "" {
			fmt.Fprintf(out, "%s: no matches\n", r.Query)
		}
	default:
		fmt.Fprintf(out, "%s:\n", r.Query)
		items := r.Items
		if len(items) > liveResultLimit {
			items = items[:liveResultLimit]
		}
		for _, item := range items {
			fmt.Fprintf(out, "  %s (%s) [%s %s]\n", item.Title, item.Year, item.Source, item.Type)
		}
	}
}
