package session

import (
	"time"

	"github.com/cadavrebot/cadavre/internal/common/clock"
	"github.com/cadavrebot/cadavre/internal/common/timer"
	"github.com/cadavrebot/cadavre/internal/common/uuid"
	"github.com/cadavrebot/cadavre/internal/quota"
	"github.com/cadavrebot/cadavre/internal/random"
	subscriptionRepo "github.com/cadavrebot/cadavre/internal/repositories/subscription"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/cadavrebot/cadavre/internal/services/session Messenger

// Messenger delivers outbound transport effects. Implementations are
// fire-and-forget; the session never waits for delivery.
type Messenger interface {
	// Say sends text to a channel or a nick
	Say(target, text string)

	// Voice grants or revokes channel voice for the given nicks
	Voice(grant bool, nicks []string)
}

// Config holds configuration for the session service
type Config struct {
	// Channel is the channel the session operates on
	Channel string

	// MaxPlayers caps the queue and triggers the automatic round
	// start. Defaults to the largest piece table; must stay within
	// the supported round sizes.
	MaxPlayers int

	// GracePeriod is the delay between the last submission and the
	// reveal
	GracePeriod time.Duration

	// Cooldown is the delay between the reveal and the queue
	// reopening
	Cooldown time.Duration

	// SweepInterval is how often expired quotas are collected
	SweepInterval time.Duration

	// Collaborator dependencies
	Messenger Messenger
	Scheduler timer.Scheduler

	// Service dependencies
	Clock            clock.Clock
	UUIDGenerator    uuid.UUID
	Rand             random.Rand
	QuotaTracker     quota.Tracker
	SubscriptionRepo subscriptionRepo.Repository
}

// RosterReadyInput contains the channel members holding voice when
// the membership list completed
type RosterReadyInput struct {
	Voiced []string
}

// PlayerDepartedInput contains parameters for a forced leave
type PlayerDepartedInput struct {
	Nick string
}

// SubmitInput contains a private fragment submission
type SubmitInput struct {
	Nick string
	Text string
}

// JoinInput contains parameters for joining the queue
type JoinInput struct {
	Nick string

	// Allowance optionally sets the player's quota: a round count or
	// a duration suffixed s, m or h. "0" clears an existing quota.
	Allowance string
}

// JoinOutput contains the result of a join
type JoinOutput struct {
	// Reply is sent back to the caller when non-empty
	Reply string
}

// PartInput contains parameters for leaving the queue
type PartInput struct {
	Nick string
}

// PartOutput contains the result of a part
type PartOutput struct {
	Reply string
}

// StartInput contains parameters for a forced round start
type StartInput struct {
	Nick string
}

// StartOutput contains the result of a start request
type StartOutput struct {
	Reply string
}

// BlameInput contains parameters for a blame request
type BlameInput struct {
	Nick string
}

// BlameOutput contains the result of a blame request
type BlameOutput struct {
	Reply string
}

// SubscribeInput contains parameters for subscribing to summons
type SubscribeInput struct {
	Nick string
}

// SubscribeOutput contains the result of subscribing
type SubscribeOutput struct {
	Reply string
}

// UnsubscribeInput contains parameters for unsubscribing from summons
type UnsubscribeInput struct {
	Nick string
}

// UnsubscribeOutput contains the result of unsubscribing
type UnsubscribeOutput struct {
	Reply string
}

// SummonInput contains parameters for summoning subscribers
type SummonInput struct {
	Nick string
}

// SummonOutput contains the result of a summon
type SummonOutput struct {
	Reply string
}

// RevealOutput contains the result of a reveal request
type RevealOutput struct {
	Reply string
}

// KickInput contains the players an admin removes from the queue
type KickInput struct {
	Nicks []string
}

// DumpInput contains parameters for a state dump
type DumpInput struct {
	Nick string
}
