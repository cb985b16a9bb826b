// Package quota tracks per-player play-time allowances: how many more
// rounds a player wants to play, or until what time. Allowances
// survive session resets and live in their own repository.
package quota

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cadavrebot/cadavre/internal/models"
	quotaRepo "github.com/cadavrebot/cadavre/internal/repositories/quota"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_tracker.go github.com/cadavrebot/cadavre/internal/quota Tracker

// ErrInvalidAllowance is returned when a join argument is neither a
// round count nor a duration
var ErrInvalidAllowance = errors.New("invalid allowance")

// Tracker manages play-time quotas
type Tracker interface {
	// Set stores or replaces a player's quota
	Set(ctx context.Context, quota *models.Quota) error

	// Clear removes a player's quota
	Clear(ctx context.Context, nick string) error

	// ConsumeRound burns one round off the counter-based quotas of
	// every participant
	ConsumeRound(ctx context.Context, participants []string) error

	// Expired returns the players whose quota no longer allows play
	Expired(ctx context.Context, now time.Time) ([]string, error)
}

// Parse interprets a join argument as a quota for nick: a bare
// integer is a remaining-round count, an integer suffixed s, m or h
// is converted to a deadline relative to now.
func Parse(nick, arg string, now time.Time) (*models.Quota, error) {
	if arg == "" {
		return nil, ErrInvalidAllowance
	}

	if n, err := strconv.Atoi(arg); err == nil {
		if n < 0 {
			return nil, ErrInvalidAllowance
		}
		return &models.Quota{Nick: nick, ByRounds: true, Rounds: n}, nil
	}

	unit := arg[len(arg)-1]
	n, err := strconv.Atoi(arg[:len(arg)-1])
	if err != nil || n <= 0 {
		return nil, ErrInvalidAllowance
	}

	var d time.Duration
	switch unit {
	case 's':
		d = time.Duration(n) * time.Second
	case 'm':
		d = time.Duration(n) * time.Minute
	case 'h':
		d = time.Duration(n) * time.Hour
	default:
		return nil, ErrInvalidAllowance
	}

	return &models.Quota{Nick: nick, Deadline: now.Add(d)}, nil
}

// Config holds configuration for the tracker
type Config struct {
	// Repository dependency
	QuotaRepo quotaRepo.Repository
}

// DefaultTracker implements Tracker over the quota repository
type DefaultTracker struct {
	repo quotaRepo.Repository
}

// New creates a new quota tracker
func New(cfg *Config) (*DefaultTracker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.QuotaRepo == nil {
		return nil, errors.New("quota repository cannot be nil")
	}

	return &DefaultTracker{
		repo: cfg.QuotaRepo,
	}, nil
}

// Set stores or replaces a player's quota
func (t *DefaultTracker) Set(ctx context.Context, quota *models.Quota) error {
	return t.repo.SaveQuota(ctx, &quotaRepo.SaveQuotaInput{
		Quota: quota,
	})
}

// Clear removes a player's quota
func (t *DefaultTracker) Clear(ctx context.Context, nick string) error {
	return t.repo.DeleteQuota(ctx, &quotaRepo.DeleteQuotaInput{
		Nick: nick,
	})
}

// ConsumeRound burns one round off the counter-based quota of every
// participant. Players without a quota are unaffected.
func (t *DefaultTracker) ConsumeRound(ctx context.Context, participants []string) error {
	for _, nick := range participants {
		quota, err := t.repo.GetQuota(ctx, &quotaRepo.GetQuotaInput{
			Nick: nick,
		})
		if err != nil {
			if errors.Is(err, quotaRepo.ErrQuotaNotFound) {
				continue
			}
			return fmt.Errorf("failed to load quota for %s: %w", nick, err)
		}

		if !quota.ByRounds {
			continue
		}

		quota.ConsumeRound()
		if err := t.repo.SaveQuota(ctx, &quotaRepo.SaveQuotaInput{
			Quota: quota,
		}); err != nil {
			return fmt.Errorf("failed to save quota for %s: %w", nick, err)
		}
	}

	return nil
}

// Expired returns the players whose quota is used up at the given
// time
func (t *DefaultTracker) Expired(ctx context.Context, now time.Time) ([]string, error) {
	output, err := t.repo.ListQuotas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotas: %w", err)
	}

	var nicks []string
	for _, quota := range output.Quotas {
		if quota.Expired(now) {
			nicks = append(nicks, quota.Nick)
		}
	}

	return nicks, nil
}
