// File: turnera/services/assistant/history.go
package assistant

import (
	"context"
	"encoding/json"
	"time"

	"turnera/models"

	"github.com/go-redis/redis/v8"
)

const chatHistoryPrefix = "chat:hist:"

// RedisHistoryStore keeps one TTL-bound transcript per session. Sessions
// never share keys, so concurrent users need no coordination.
type RedisHistoryStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisHistoryStore(client *redis.Client, ttl time.Duration) *RedisHistoryStore {
	return &RedisHistoryStore{client: client, ttl: ttl}
}

func (s *RedisHistoryStore) Get(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	key := chatHistoryPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return []models.ChatMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	var msgs []models.ChatMessage
	if err := json.Unmarshal([]byte(data), &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *RedisHistoryStore) Append(ctx context.Context, sessionID string, msg models.ChatMessage) error {
	msgs, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	msgs = append(msgs, msg)
	b, err := json.Marshal(msgs)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, chatHistoryPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisHistoryStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, chatHistoryPrefix+sessionID).Err()
}
