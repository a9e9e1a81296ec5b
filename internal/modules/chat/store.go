// README: Conversation store backed by Redis.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "chat:session:%s"
	// TTL for conversation state (a booking conversation resolves well within a day).
	sessionTTL = 24 * time.Hour
)

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// Save persists the conversation under its session key, refreshing the TTL.
func (s *Store) Save(ctx context.Context, conv *Conversation) error {
	data, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, sessionKey(conv.ID), data, sessionTTL).Err()
}

// Load returns the conversation for a session id, and whether it exists.
func (s *Store) Load(ctx context.Context, id string) (*Conversation, bool, error) {
	val, err := s.redis.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var conv Conversation
	if err := json.Unmarshal([]byte(val), &conv); err != nil {
		return nil, false, err
	}
	return &conv, true, nil
}

func sessionKey(id string) string {
	return fmt.Sprintf(sessionKeyPrefix, id)
}
