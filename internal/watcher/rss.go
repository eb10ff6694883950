package watcher

import (
	"context"
	"crypto/md5"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"cpucatalog/internal/config"
	"cpucatalog/internal/domain"
)

// RSS fetches vendor newsroom feeds and turns their items into
// announcements. The feed's family hint is attached to every item so the
// consumer can classify titles that do not name the product line.
type RSS struct {
	client *http.Client
	parser *gofeed.Parser
}

func NewRSS() *RSS {
	return &RSS{
		client: &http.Client{Timeout: 15 * time.Second},
		parser: gofeed.NewParser(),
	}
}

func (r *RSS) Fetch(ctx context.Context, feed config.FeedConfig) ([]domain.Announcement, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feed.URL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml, */*")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	parsed, err := r.parser.Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	announcements := make([]domain.Announcement, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		publishedAt := time.Now()
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		}

		guid := item.GUID
		if guid == "" {
			guid = item.Link
		}

		announcements = append(announcements, domain.Announcement{
			ID:          generateID(feed.Name, guid),
			Source:      feed.Name,
			FamilyHint:  feed.Family,
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: publishedAt,
		})
	}

	return announcements, nil
}

func generateID(source, guid string) string {
	hash := md5.Sum([]byte(source + "|" + guid))
	return fmt.Sprintf("%x", hash)[:12]
}
