package storage

import (
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const resetKeyPrefix = "reset:"

// Reset entries live in redis rather than process memory so outstanding
// tokens survive a restart and every instance sees them. The key is the
// hash of the token, never the token itself.

func (s *Service) SaveResetToken(tokenHash, email string, ttl time.Duration) error {
	return s.Redis.Set(s.Ctx, resetKeyPrefix+tokenHash, email, ttl).Err()
}

// GetResetEmail returns the email bound to a reset token hash, or "" if the
// entry is absent or expired.
func (s *Service) GetResetEmail(tokenHash string) (string, error) {
	email, err := s.Redis.Get(s.Ctx, resetKeyPrefix+tokenHash).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return email, nil
}

func (s *Service) DeleteResetToken(tokenHash string) error {
	return s.Redis.Del(s.Ctx, resetKeyPrefix+tokenHash).Err()
}
