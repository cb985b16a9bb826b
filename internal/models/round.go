package models

import (
	"time"
)

// Round is the snapshot of a completed round, kept for replay
type Round struct {
	// ID is the unique identifier for the round
	ID string

	// Players contains the participants in round turn order
	Players []string

	// Fragments contains the submitted texts in canonical piece order
	Fragments []string

	// Sentence is the assembled sentence exactly as it was broadcast
	Sentence string

	// StartedAt is when the round began
	StartedAt time.Time

	// CompletedAt is when the sentence was revealed
	CompletedAt time.Time
}
