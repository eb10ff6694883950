// Package cache wraps the redis side-state the catalog keeps next to
// Postgres: a short-lived stats cache, the watcher's seen-set, and the
// rolling list of classification candidates from the ingest pipeline.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"cpucatalog/internal/domain"
)

const (
	statsKey      = "cpucatalog:stats"
	seenKey       = "cpucatalog:announcements:seen"
	candidatesKey = "cpucatalog:announcements:recent"

	statsTTL      = time.Minute
	maxCandidates = 100
)

type Client struct {
	rdb *redis.Client
}

func New(addr string) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// Stats cache

func (c *Client) GetStats(ctx context.Context) (*domain.Stats, error) {
	data, err := c.rdb.Get(ctx, statsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats domain.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) SetStats(ctx context.Context, stats domain.Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, statsKey, data, statsTTL).Err()
}

// InvalidateStats drops the cached stats after a catalog write.
func (c *Client) InvalidateStats(ctx context.Context) error {
	return c.rdb.Del(ctx, statsKey).Err()
}

// Announcement dedupe

func (c *Client) MarkSeen(ctx context.Context, id string) (bool, error) {
	added, err := c.rdb.SAdd(ctx, seenKey, id).Result()
	return added > 0, err
}

// Classification candidates

func (c *Client) PushCandidate(ctx context.Context, cand domain.Candidate) error {
	data, err := json.Marshal(cand)
	if err != nil {
		return err
	}

	pipe := c.rdb.TxPipeline()
	pipe.LPush(ctx, candidatesKey, data)
	pipe.LTrim(ctx, candidatesKey, 0, maxCandidates-1)
	_, err = pipe.Exec(ctx)
	return err
}

func (c *Client) RecentCandidates(ctx context.Context) ([]domain.Candidate, error) {
	items, err := c.rdb.LRange(ctx, candidatesKey, 0, maxCandidates-1).Result()
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Candidate, 0, len(items))
	for _, item := range items {
		var cand domain.Candidate
		if err := json.Unmarshal([]byte(item), &cand); err != nil {
			continue
		}
		candidates = append(candidates, cand)
	}
	return candidates, nil
}
