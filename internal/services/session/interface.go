package session

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/cadavrebot/cadavre/internal/services/session Service

// Service defines the interface for session operations. Transport
// events and player commands both funnel into it; the session decides
// what they mean for the current phase.
type Service interface {
	// ChannelJoined signals that the bot itself (re)joined its
	// channel and a roster delivery is about to begin
	ChannelJoined(ctx context.Context) error

	// RosterReady signals that the channel membership list is fully
	// delivered; voiced members seed the pending-player set
	RosterReady(ctx context.Context, input *RosterReadyInput) error

	// PlayerDeparted handles a part, quit or kick seen on the channel
	PlayerDeparted(ctx context.Context, input *PlayerDepartedInput) error

	// Submit stores a privately-messaged fragment for the sender's
	// assigned piece
	Submit(ctx context.Context, input *SubmitInput) error

	// Join enters or refreshes queue membership, optionally setting a
	// play-time allowance
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Part leaves the queue, or flags intent to leave after the
	// active round
	Part(ctx context.Context, input *PartInput) (*PartOutput, error)

	// Start forces a round start once the minimum roster is met
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Blame broadcasts which players have not submitted yet
	Blame(ctx context.Context, input *BlameInput) (*BlameOutput, error)

	// Subscribe opts the caller into summon notifications
	Subscribe(ctx context.Context, input *SubscribeInput) (*SubscribeOutput, error)

	// Unsubscribe opts the caller out of summon notifications
	Unsubscribe(ctx context.Context, input *UnsubscribeInput) (*UnsubscribeOutput, error)

	// Summon broadcasts an invite to every subscriber except the
	// caller
	Summon(ctx context.Context, input *SummonInput) (*SummonOutput, error)

	// Reveal replays the most recently completed sentence with
	// highlight markers
	Reveal(ctx context.Context) (*RevealOutput, error)

	// Kick removes players from the queue and revokes their voice
	Kick(ctx context.Context, input *KickInput) error

	// Abort force-ends an active round with an abandonment
	// announcement
	Abort(ctx context.Context) error

	// Reset force-returns the session to the queue, discarding
	// in-round data but preserving pending players
	Reset(ctx context.Context) error

	// Dump sends an introspection dump of the session state to the
	// caller, privately
	Dump(ctx context.Context, input *DumpInput) error

	// Close stops the periodic quota sweep
	Close()
}
