package models

import (
	"fmt"
	"time"
)

// Quota is a player's self-imposed play-time allowance. Exactly one
// representation is active: a remaining-round counter or a wall-clock
// deadline.
type Quota struct {
	// Nick is the player the quota belongs to
	Nick string

	// ByRounds selects the counter representation
	ByRounds bool

	// Rounds is the number of rounds left, meaningful when ByRounds
	Rounds int

	// Deadline is the wall-clock cutoff, meaningful when !ByRounds.
	// It is immutable once set; a new join replaces the whole quota.
	Deadline time.Time
}

// ConsumeRound burns one round off a counter-based quota. The counter
// never goes negative. Deadline-based quotas are checked, not
// decremented.
func (q *Quota) ConsumeRound() {
	if q.ByRounds && q.Rounds > 0 {
		q.Rounds--
	}
}

// Expired reports whether the quota no longer allows play at the
// given time
func (q *Quota) Expired(now time.Time) bool {
	if q.ByRounds {
		return q.Rounds <= 0
	}
	return !now.Before(q.Deadline)
}

// String describes the remaining allowance
func (q *Quota) String() string {
	if q.ByRounds {
		return fmt.Sprintf("%d manche(s)", q.Rounds)
	}
	return fmt.Sprintf("jusqu'à %s", q.Deadline.Format("15:04:05"))
}
