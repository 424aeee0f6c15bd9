package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/config"

	"github.com/redis/go-redis/v9"
)

// Cache envuelve Redis con helpers JSON. Es un objeto inyectado, no un
// singleton de paquete: los services que cachean reciben *Cache y los tests
// pasan nil (todas las operaciones son no-op con client nil).
type Cache struct {
	client *redis.Client
}

func NewRedis(cfg *config.Config) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("[redis] error conectando: %v", err)
	}

	log.Println("[redis] conectado OK")
	return &Cache{client: client}
}

// GetJSON lee una key, si existe deserializa el JSON en dest.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON serializa value a JSON y lo guarda con TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}

// Invalidate borra una key. Punto de entrada explícito de invalidación
// (lo usa el mantenimiento admin).
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if c == nil || c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
