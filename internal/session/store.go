// Package session persists the per-visitor cart mapping between requests.
// The core treats the session as an opaque key-value container; the cart
// is serialized to JSON only at this boundary.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
)

const cartTTL = 7 * 24 * time.Hour

// Store reads and writes one visitor's cart.
type Store interface {
	GetCart(ctx context.Context, sessionID string) models.Cart
	SaveCart(ctx context.Context, sessionID string, c models.Cart) error
}

// RedisStore keeps carts in redis with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	log    *logger.Logger
}

func NewRedisStore(client *redis.Client, log *logger.Logger) *RedisStore {
	return &RedisStore{client: client, log: log}
}

func cartKey(sessionID string) string {
	return "session:" + sessionID + ":cart"
}

// GetCart returns the stored cart, or an empty one for a new visitor or an
// undecodable payload. Read failures degrade to an empty cart rather than
// failing the page.
func (s *RedisStore) GetCart(ctx context.Context, sessionID string) models.Cart {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err == redis.Nil {
		return models.Cart{}
	}
	if err != nil {
		s.log.Warn("SESSION", fmt.Sprintf("Failed to read cart for session %s: %v", sessionID, err))
		return models.Cart{}
	}

	var c models.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		s.log.Warn("SESSION", fmt.Sprintf("Malformed cart for session %s, starting empty", sessionID))
		return models.Cart{}
	}
	c.Clean()
	return c
}

func (s *RedisStore) SaveCart(ctx context.Context, sessionID string, c models.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(sessionID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// MemoryStore is the single-process fallback when redis is not configured.
type MemoryStore struct {
	carts map[string]models.Cart
	mutex sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]models.Cart)}
}

func (s *MemoryStore) GetCart(ctx context.Context, sessionID string) models.Cart {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stored, ok := s.carts[sessionID]
	if !ok {
		return models.Cart{}
	}
	c := models.Cart{}
	for k, v := range stored {
		c[k] = v
	}
	c.Clean()
	return c
}

func (s *MemoryStore) SaveCart(ctx context.Context, sessionID string, c models.Cart) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored := models.Cart{}
	for k, v := range c {
		stored[k] = v
	}
	s.carts[sessionID] = stored
	return nil
}
