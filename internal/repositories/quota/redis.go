package quota

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cadavrebot/cadavre/internal/models"
	"github.com/redis/go-redis/v9"
)

// quotaKeyPrefix namespaces quota keys in Redis
const quotaKeyPrefix = "quota:"

// ErrQuotaNotFound is returned when a player has no tracked quota
var ErrQuotaNotFound = errors.New("quota not found")

// Config holds configuration for the Redis quota repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed quota repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveQuota persists a quota to Redis
func (r *redisRepository) SaveQuota(ctx context.Context, input *SaveQuotaInput) error {
	if input == nil || input.Quota == nil {
		return errors.New("input and quota cannot be nil")
	}

	if input.Quota.Nick == "" {
		return errors.New("quota nick cannot be empty")
	}

	quotaJSON, err := json.Marshal(input.Quota)
	if err != nil {
		return fmt.Errorf("failed to marshal quota: %w", err)
	}

	key := quotaKeyPrefix + input.Quota.Nick
	if err := r.client.Set(ctx, key, quotaJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save quota: %w", err)
	}

	return nil
}

// GetQuota retrieves a quota by nick from Redis
func (r *redisRepository) GetQuota(ctx context.Context, input *GetQuotaInput) (*models.Quota, error) {
	if input == nil || input.Nick == "" {
		return nil, errors.New("input and nick cannot be empty")
	}

	quotaJSON, err := r.client.Get(ctx, quotaKeyPrefix+input.Nick).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrQuotaNotFound
		}
		return nil, fmt.Errorf("failed to get quota: %w", err)
	}

	var quota models.Quota
	if err := json.Unmarshal([]byte(quotaJSON), &quota); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quota: %w", err)
	}

	return &quota, nil
}

// DeleteQuota removes a quota from Redis. Deleting an untracked nick
// is not an error.
func (r *redisRepository) DeleteQuota(ctx context.Context, input *DeleteQuotaInput) error {
	if input == nil || input.Nick == "" {
		return errors.New("input and nick cannot be empty")
	}

	if err := r.client.Del(ctx, quotaKeyPrefix+input.Nick).Err(); err != nil {
		return fmt.Errorf("failed to delete quota: %w", err)
	}

	return nil
}

// ListQuotas retrieves every tracked quota from Redis
func (r *redisRepository) ListQuotas(ctx context.Context) (*ListQuotasOutput, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, quotaKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan quotas: %w", err)
	}

	quotas := make([]*models.Quota, 0, len(keys))
	for _, key := range keys {
		quotaJSON, err := r.client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				// Deleted between scan and fetch.
				continue
			}
			return nil, fmt.Errorf("failed to get quota %s: %w", key, err)
		}

		var quota models.Quota
		if err := json.Unmarshal([]byte(quotaJSON), &quota); err != nil {
			return nil, fmt.Errorf("failed to unmarshal quota %s: %w", key, err)
		}

		quotas = append(quotas, &quota)
	}

	return &ListQuotasOutput{
		Quotas: quotas,
	}, nil
}
