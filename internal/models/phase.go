package models

// Phase represents the current state of the session
type Phase string

const (
	// PhaseWaitingForRoster indicates the bot has joined its channel
	// and is waiting for the membership roster to be delivered
	PhaseWaitingForRoster Phase = "waiting_for_roster"

	// PhaseQueue indicates players may join the waiting room for the
	// next round
	PhaseQueue Phase = "queue"

	// PhaseGame indicates a round is in progress and fragments are
	// being collected
	PhaseGame Phase = "game"

	// PhaseGracePeriod indicates every fragment is in and late edits
	// are still accepted until the reveal timer fires
	PhaseGracePeriod Phase = "grace_period"

	// PhasePostGameCooldown indicates the round is over and the queue
	// has not reopened yet
	PhasePostGameCooldown Phase = "post_game_cooldown"
)

// transitions is the closed set of legal phase changes. Every phase
// may fall back to PhaseQueue: that is the administrative reset path.
var transitions = map[Phase][]Phase{
	PhaseWaitingForRoster: {PhaseQueue},
	PhaseQueue:            {PhaseGame, PhaseQueue},
	PhaseGame:             {PhaseGracePeriod, PhasePostGameCooldown, PhaseQueue},
	PhaseGracePeriod:      {PhasePostGameCooldown, PhaseQueue},
	PhasePostGameCooldown: {PhaseQueue},
}

// CanTransitionTo reports whether moving from p to target is legal
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, next := range transitions[p] {
		if next == target {
			return true
		}
	}
	return false
}

// InRound reports whether a round is currently being played
func (p Phase) InRound() bool {
	return p == PhaseGame || p == PhaseGracePeriod
}

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}
