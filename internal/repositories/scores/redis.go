package scores

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/showdown/internal/models"
)

const (
	// scoreboardKey is the sorted set holding every player's balance,
	// keyed by player handle with the balance as the score
	scoreboardKey = "scores:points"
)

// Config holds configuration for the Redis scores repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed scores repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AddPoints increments a player's balance, creating the entry if needed
func (r *redisRepository) AddPoints(ctx context.Context, input *AddPointsInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	if input.Amount < 0 {
		return errors.New("amount cannot be negative")
	}

	if input.Amount == 0 {
		return nil
	}

	err := r.client.ZIncrBy(ctx, scoreboardKey, float64(input.Amount), input.PlayerID).Err()
	if err != nil {
		return fmt.Errorf("failed to add points for player %s: %w", input.PlayerID, err)
	}

	return nil
}

// GetPoints retrieves a player's balance; a missing entry is balance 0
func (r *redisRepository) GetPoints(ctx context.Context, input *GetPointsInput) (*GetPointsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	balance, err := r.balance(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetPointsOutput{
		Points: balance,
	}, nil
}

// RedeemAll returns a player's full balance and resets it to 0
func (r *redisRepository) RedeemAll(ctx context.Context, input *RedeemAllInput) (*RedeemAllOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	balance, err := r.balance(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if balance == 0 {
		return &RedeemAllOutput{Redeemed: 0}, nil
	}

	err = r.client.ZAdd(ctx, scoreboardKey, redis.Z{
		Score:  0,
		Member: input.PlayerID,
	}).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to reset points for player %s: %w", input.PlayerID, err)
	}

	return &RedeemAllOutput{
		Redeemed: balance,
	}, nil
}

// RedeemAmount subtracts the requested amount if the balance covers it
func (r *redisRepository) RedeemAmount(ctx context.Context, input *RedeemAmountInput) (*RedeemAmountOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	if input.Amount < 0 {
		return nil, errors.New("amount cannot be negative")
	}

	balance, err := r.balance(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	// Insufficient funds redeem nothing and change nothing
	if balance < input.Amount {
		return &RedeemAmountOutput{Redeemed: 0}, nil
	}

	if input.Amount > 0 {
		err = r.client.ZIncrBy(ctx, scoreboardKey, -float64(input.Amount), input.PlayerID).Err()
		if err != nil {
			return nil, fmt.Errorf("failed to redeem points for player %s: %w", input.PlayerID, err)
		}
	}

	return &RedeemAmountOutput{
		Redeemed: input.Amount,
	}, nil
}

// GetLeaderboard retrieves the ranked standings, highest balance first.
// Redis breaks score ties by member descending, so ties are re-sorted
// here by handle ascending before truncation.
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	results, err := r.client.ZRevRangeWithScores(ctx, scoreboardKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	entries := make([]models.ScoreEntry, 0, len(results))
	for _, z := range results {
		playerID, ok := z.Member.(string)
		if !ok {
			continue
		}

		entries = append(entries, models.ScoreEntry{
			PlayerID: playerID,
			Points:   int(z.Score),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})

	if input.Limit > 0 && len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}

// balance reads a player's current score, treating a missing member as 0
func (r *redisRepository) balance(ctx context.Context, playerID string) (int, error) {
	score, err := r.client.ZScore(ctx, scoreboardKey, playerID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get points for player %s: %w", playerID, err)
	}

	return int(score), nil
}
