package subscription

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/cadavrebot/cadavre/internal/repositories/subscription Repository

// Repository defines the interface for summon-subscription persistence
type Repository interface {
	// Add records that a player wants summon notifications
	Add(ctx context.Context, input *AddInput) error

	// Remove drops a player from the subscription set
	Remove(ctx context.Context, input *RemoveInput) error

	// Members retrieves every subscribed player
	Members(ctx context.Context) (*MembersOutput, error)
}
