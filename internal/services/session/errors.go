package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrInvalidPhase indicates an internal operation ran while the
	// session was not in one of its required phases. It is a logic or
	// scheduling defect, never a user error.
	ErrInvalidPhase SessionError = "session is not in a required phase for this operation"

	ErrUnsupportedRoundSize SessionError = "no piece table for this round size"

	ErrNilInput SessionError = "input cannot be nil or empty"

	ErrInvalidMaxPlayers SessionError = "max players must match a supported round size"

	ErrNilConfig           SessionError = "config cannot be nil"
	ErrEmptyChannel        SessionError = "channel cannot be empty"
	ErrNilMessenger        SessionError = "messenger cannot be nil"
	ErrNilScheduler        SessionError = "scheduler cannot be nil"
	ErrNilClock            SessionError = "clock cannot be nil"
	ErrNilRand             SessionError = "randomness source cannot be nil"
	ErrNilUUIDGenerator    SessionError = "UUID generator cannot be nil"
	ErrNilQuotaTracker     SessionError = "quota tracker cannot be nil"
	ErrNilSubscriptionRepo SessionError = "subscription repository cannot be nil"
)
