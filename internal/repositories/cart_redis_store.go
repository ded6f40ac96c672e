package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ecompro/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps one JSON cart document per owner under "cart-<owner>".
// Records carry no TTL: the cart tier is still best-effort (Redis may evict),
// but we never expire a cart ourselves.
type RedisCartStore struct {
	client *redis.Client
}

// NewRedisCartStore creates a new RedisCartStore on an existing client.
func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{
		client: client,
	}
}

// Get fetches the owner's cart. A missing key is (nil, nil).
func (s *RedisCartStore) Get(ctx context.Context, ownerID string) (*models.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(ownerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get cart for owner %s: %w", ownerID, err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart for owner %s: %w", ownerID, err)
	}
	return &cart, nil
}

// Set replaces the owner's whole cart record.
func (s *RedisCartStore) Set(ctx context.Context, ownerID string, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart for owner %s: %w", ownerID, err)
	}
	if err := s.client.Set(ctx, cartKey(ownerID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set cart for owner %s: %w", ownerID, err)
	}
	return nil
}

// Delete removes the owner's cart record entirely.
func (s *RedisCartStore) Delete(ctx context.Context, ownerID string) error {
	if err := s.client.Del(ctx, cartKey(ownerID)).Err(); err != nil {
		return fmt.Errorf("redis delete cart for owner %s: %w", ownerID, err)
	}
	return nil
}

func cartKey(ownerID string) string {
	return fmt.Sprintf("cart-%s", ownerID)
}
