package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// subscribersKey is the Redis set holding subscribed nicks
const subscribersKey = "summon_subscribers"

// Config holds configuration for the Redis subscription repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed subscription repository
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

// Add records a subscriber in the Redis set
func (r *redisRepository) Add(ctx context.Context, input *AddInput) error {
	if input == nil || input.Nick == "" {
		return errors.New("input and nick cannot be empty")
	}

	if err := r.client.SAdd(ctx, subscribersKey, input.Nick).Err(); err != nil {
		return fmt.Errorf("failed to add subscriber: %w", err)
	}

	return nil
}

// Remove drops a subscriber from the Redis set. Removing an absent
// nick is not an error.
func (r *redisRepository) Remove(ctx context.Context, input *RemoveInput) error {
	if input == nil || input.Nick == "" {
		return errors.New("input and nick cannot be empty")
	}

	if err := r.client.SRem(ctx, subscribersKey, input.Nick).Err(); err != nil {
		return fmt.Errorf("failed to remove subscriber: %w", err)
	}

	return nil
}

// Members retrieves every subscriber from the Redis set
func (r *redisRepository) Members(ctx context.Context) (*MembersOutput, error) {
	nicks, err := r.client.SMembers(ctx, subscribersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get subscribers: %w", err)
	}

	return &MembersOutput{
		Nicks: nicks,
	}, nil
}
