package source

import (
	"context"
	"net/http"
	"time"

	"github.com/SlyMarbo/rss"
	"github.com/kovalyov-valentin/job-feed-parser/internal/model"
)

// RSS клиент ленты вакансий
type RSSSource struct {
	// URL откуда мы забираем данные
	URL        string
	SourceName string

	client *http.Client
}

func NewRSSSource(url, name string, timeout time.Duration) RSSSource {
	return RSSSource{
		URL:        url,
		SourceName: name,
		client:     &http.Client{Timeout: timeout},
	}
}

// Забирает ленту и превращает ее элементы в вакансии.
// Разметку description не трогаем, ее разбирает description.Extract
func (s RSSSource) Fetch(ctx context.Context) ([]model.Item, error) {
	feed, err := s.loadFeed(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]model.Item, 0, len(feed.Items))
	for _, item := range feed.Items {
		// SlyMarbo/rss кладет <description> в Summary
		description := item.Summary
		if description == "" {
			description = item.Content
		}

		items = append(items, model.Item{
			Title:       item.Title,
			Link:        item.Link,
			Description: description,
			Categories:  item.Categories,
			Date:        item.Date.UTC(),
		})
	}

	return items, nil
}

func (s RSSSource) loadFeed(ctx context.Context) (*rss.Feed, error) {
	var (
		feedCh = make(chan *rss.Feed, 1)
		errCh  = make(chan error, 1)
	)

	go func() {
		feed, err := rss.FetchByClient(s.URL, s.client)
		if err != nil {
			errCh <- err
			return
		}

		feedCh <- feed
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case err := <-errCh:
		return nil, err
	case feed := <-feedCh:
		return feed, nil
	}
}

func (s RSSSource) Name() string {
	return s.SourceName
}
