package subscription

// AddInput contains parameters for subscribing a player
type AddInput struct {
	Nick string
}

// RemoveInput contains parameters for unsubscribing a player
type RemoveInput struct {
	Nick string
}

// MembersOutput contains the result of listing subscribers
type MembersOutput struct {
	Nicks []string
}
