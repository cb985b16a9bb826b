package quota

import (
	"context"

	"github.com/cadavrebot/cadavre/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/cadavrebot/cadavre/internal/repositories/quota Repository

// Repository defines the interface for quota persistence
type Repository interface {
	// SaveQuota persists a player's quota
	SaveQuota(ctx context.Context, input *SaveQuotaInput) error

	// GetQuota retrieves a player's quota
	GetQuota(ctx context.Context, input *GetQuotaInput) (*models.Quota, error)

	// DeleteQuota removes a player's quota
	DeleteQuota(ctx context.Context, input *DeleteQuotaInput) error

	// ListQuotas retrieves every tracked quota
	ListQuotas(ctx context.Context) (*ListQuotasOutput, error)
}
