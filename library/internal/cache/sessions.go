package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Sessions keeps one key per issued token; a missing key means the token was revoked or expired.
type Sessions struct {
	rdb *redis.Client
}

func NewSessions(rdb *redis.Client) *Sessions {
	return &Sessions{rdb: rdb}
}

func sessionKey(sid string) string { return fmt.Sprintf("library:session:%s", sid) }

func (s *Sessions) Create(ctx context.Context, sid string, memberID int64, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, sessionKey(sid), strconv.FormatInt(memberID, 10), ttl).Err(); err != nil {
		return errors.Wrap(err, "session create")
	}
	return nil
}

func (s *Sessions) Active(ctx context.Context, sid string) (bool, error) {
	n, err := s.rdb.Exists(ctx, sessionKey(sid)).Result()
	if err != nil {
		return false, errors.Wrap(err, "session lookup")
	}
	return n == 1, nil
}

func (s *Sessions) Revoke(ctx context.Context, sid string) error {
	if err := s.rdb.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return errors.Wrap(err, "session revoke")
	}
	return nil
}
