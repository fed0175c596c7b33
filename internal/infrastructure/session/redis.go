package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore records revoked token JTIs in Redis. A revoked entry lives
// exactly as long as the token it invalidates could still be presented.
type RevocationStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRevocationStore(host, password string, db int, tokenTTL time.Duration) *RevocationStore {
	return &RevocationStore{
		client: redis.NewClient(&redis.Options{
			Addr:         host,
			Password:     password,
			DB:           db,
			PoolSize:     10,
			MinIdleConns: 5,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
		ttl: tokenTTL,
	}
}

func (s *RevocationStore) Connect(ctx context.Context) error {
	log.Println("[REDIS] Connecting to Redis...")

	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	log.Println("[REDIS] Connected successfully")
	return nil
}

func key(jti string) string {
	return "revoked_token:" + jti
}

// Revoke marks a token id as logged out until it would have expired anyway.
func (s *RevocationStore) Revoke(ctx context.Context, jti string) error {
	if jti == "" {
		return nil
	}
	return s.client.Set(ctx, key(jti), "1", s.ttl).Err()
}

// IsRevoked answers the auth middleware's check.
func (s *RevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RevocationStore) HealthCheck(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("redis client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	return nil
}

func (s *RevocationStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
