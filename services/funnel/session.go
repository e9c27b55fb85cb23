package funnel

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"moveflow/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists wizard sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, session *models.FunnelSession) error
	Load(ctx context.Context, sessionID string) (*models.FunnelSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisStore keeps sessions as JSON blobs with a sliding TTL.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func sessionKey(id string) string { return "funnel:" + id }

func (s *RedisStore) Save(ctx context.Context, session *models.FunnelSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal funnel session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.SessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store funnel session: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*models.FunnelSession, error) {
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("funnel session not found or expired: %w", err)
	}
	var session models.FunnelSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse funnel session: %w", err)
	}
	return &session, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete funnel session: %w", err)
	}
	return nil
}
