package session

import (
	"context"
	"encoding/json"
	"fmt"

	"cozy-threads/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Redis key patterns, one cart and one flash list per session.
const (
	keyCart  = "cart:%s"
	keyFlash = "flash:%s"
)

// RedisStore is a Store backed by Redis. Carts are stored as JSON strings,
// flashes as a list, both expiring after TTL.
type RedisStore struct {
	rdb    *redis.Client
	logger zerolog.Logger
}

// NewRedisStore creates a Redis-backed session store and verifies
// connectivity.
func NewRedisStore(ctx context.Context, addr string, logger zerolog.Logger) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisStore{
		rdb:    rdb,
		logger: logger.With().Str("session_store", "redis").Logger(),
	}, nil
}

// Close releases the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

// Cart returns the session's cart, empty when absent.
func (s *RedisStore) Cart(ctx context.Context, sid string) (model.Cart, error) {
	raw, err := s.rdb.Get(ctx, fmt.Sprintf(keyCart, sid)).Result()
	if err == redis.Nil {
		return model.Cart{}, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sid).Msg("failed to get cart")
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var cart model.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		s.logger.Error().Err(err).Str("session_id", sid).Msg("failed to decode cart")
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return cart, nil
}

// SetCart overwrites the session's cart and refreshes its TTL.
func (s *RedisStore) SetCart(ctx context.Context, sid string, cart model.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.rdb.Set(ctx, fmt.Sprintf(keyCart, sid), raw, TTL).Err(); err != nil {
		s.logger.Error().Err(err).Str("session_id", sid).Msg("failed to set cart")
		return fmt.Errorf("failed to set cart: %w", err)
	}
	return nil
}

// ClearCart removes the session's cart.
func (s *RedisStore) ClearCart(ctx context.Context, sid string) error {
	if err := s.rdb.Del(ctx, fmt.Sprintf(keyCart, sid)).Err(); err != nil {
		s.logger.Error().Err(err).Str("session_id", sid).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// AddFlash queues a flash message for the session.
func (s *RedisStore) AddFlash(ctx context.Context, sid string, flash Flash) error {
	raw, err := json.Marshal(flash)
	if err != nil {
		return fmt.Errorf("failed to encode flash: %w", err)
	}

	key := fmt.Sprintf(keyFlash, sid)
	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, key, raw)
	pipe.Expire(ctx, key, TTL)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Error().Err(err).Str("session_id", sid).Msg("failed to add flash")
		return fmt.Errorf("failed to add flash: %w", err)
	}
	return nil
}

// PopFlashes returns and removes the session's queued flash messages.
func (s *RedisStore) PopFlashes(ctx context.Context, sid string) ([]Flash, error) {
	key := fmt.Sprintf(keyFlash, sid)
	pipe := s.rdb.TxPipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Error().Err(err).Str("session_id", sid).Msg("failed to pop flashes")
		return nil, fmt.Errorf("failed to pop flashes: %w", err)
	}

	raws := rangeCmd.Val()
	flashes := make([]Flash, 0, len(raws))
	for _, raw := range raws {
		var f Flash
		if err := json.Unmarshal([]byte(raw), &f); err != nil {
			s.logger.Warn().Err(err).Str("session_id", sid).Msg("skipping undecodable flash")
			continue
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}
