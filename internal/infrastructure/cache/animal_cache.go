package cache

import (
	"context"
	"encoding/json"
	"time"

	"vet-calendar-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	animalKeyPrefix = "animal:"
	animalCacheTTL  = 5 * time.Minute
)

// AnimalCache is a read-through cache for animal records, keyed by id.
// Cache misses and Redis failures fall back to the database; a nil
// *AnimalCache is valid and disables caching entirely.
type AnimalCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewAnimalCache(client *redis.Client, log *logrus.Logger) *AnimalCache {
	return &AnimalCache{client: client, log: log}
}

// Get returns the cached animal or nil on miss.
func (c *AnimalCache) Get(ctx context.Context, id uuid.UUID) *entity.Animal {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := c.client.Get(ctx, animalKeyPrefix+id.String()).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read animal %s from cache: %+v", id, err)
		}
		return nil
	}

	var animal entity.Animal
	if err := json.Unmarshal(data, &animal); err != nil {
		c.log.Warnf("Failed to decode cached animal %s: %+v", id, err)
		return nil
	}
	return &animal
}

// Set stores the animal with a short TTL. Failures are logged, never surfaced.
func (c *AnimalCache) Set(ctx context.Context, animal *entity.Animal) {
	if c == nil || c.client == nil || animal == nil {
		return
	}

	data, err := json.Marshal(animal)
	if err != nil {
		c.log.Warnf("Failed to encode animal %s for cache: %+v", animal.ID, err)
		return
	}
	if err := c.client.Set(ctx, animalKeyPrefix+animal.ID.String(), data, animalCacheTTL).Err(); err != nil {
		c.log.Warnf("Failed to cache animal %s: %+v", animal.ID, err)
	}
}

// Invalidate drops the cached animal, used after deletes.
func (c *AnimalCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, animalKeyPrefix+id.String()).Err(); err != nil {
		c.log.Warnf("Failed to invalidate cached animal %s: %+v", id, err)
	}
}
