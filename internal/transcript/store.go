package transcript

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const listKey = "assistant:transcript"

// Entry is one question/answer exchange shown in the chat log.
type Entry struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Intent   string    `json:"intent"`
	AskedAt  time.Time `json:"asked_at"`
}

// Store keeps a capped log of recent exchanges in redis.
type Store struct {
	client *redis.Client
	limit  int64
}

// NewStore returns redis-backed store keeping at most limit entries.
func NewStore(client *redis.Client, limit int) *Store {
	if limit <= 0 {
		limit = 50
	}
	return &Store{client: client, limit: int64(limit)}
}

// Append pushes an exchange and trims the log to its cap.
func (s *Store) Append(ctx context.Context, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, listKey, data)
	pipe.LTrim(ctx, listKey, 0, s.limit-1)
	_, err = pipe.Exec(ctx)
	return err
}

// Recent returns up to limit latest exchanges, newest first.
func (s *Store) Recent(ctx context.Context) ([]Entry, error) {
	raw, err := s.client.LRange(ctx, listKey, 0, s.limit-1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
