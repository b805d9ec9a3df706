package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// SessionDuration is 7 days
	SessionDuration = 7 * 24 * time.Hour
	// sessionKeyPrefix is the Redis key prefix for sessions
	sessionKeyPrefix = "session:"
	// userSessionKeyPrefix is the Redis key prefix for user->session mapping
	userSessionKeyPrefix = "user_session:"
)

// SessionService manages opaque bearer session tokens in Redis.
type SessionService struct {
	rdb *redis.Client
}

func NewSessionService(rdb *redis.Client) *SessionService {
	return &SessionService{rdb: rdb}
}

// Create issues a new session token for a user. Any existing session for the
// user is invalidated first so the 7-day timer resets from this login.
func (s *SessionService) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	s.InvalidateUser(ctx, userID)

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	if err := s.rdb.Set(ctx, sessionKeyPrefix+token, userID.String(), SessionDuration).Err(); err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, userSessionKeyPrefix+userID.String(), token, SessionDuration).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Validate checks a session token and returns the owning user's ID.
func (s *SessionService) Validate(ctx context.Context, token string) (uuid.UUID, bool, error) {
	if token == "" {
		return uuid.Nil, false, nil
	}

	userIDStr, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return uuid.Nil, false, nil
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false, err
	}
	return userID, true, nil
}

// Invalidate removes a session.
func (s *SessionService) Invalidate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	userIDStr, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Result()
	if err == nil && userIDStr != "" {
		s.rdb.Del(ctx, userSessionKeyPrefix+userIDStr)
	}
	return s.rdb.Del(ctx, sessionKeyPrefix+token).Err()
}

// InvalidateUser removes the user's current session, if any. Used on login
// and when credentials change.
func (s *SessionService) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	userSessionKey := userSessionKeyPrefix + userID.String()

	token, err := s.rdb.Get(ctx, userSessionKey).Result()
	if err == nil && token != "" {
		s.rdb.Del(ctx, sessionKeyPrefix+token)
	}
	return s.rdb.Del(ctx, userSessionKey).Err()
}
