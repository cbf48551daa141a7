package entities

import "time"

// Step is the continuation a user's next free-text message is routed to.
type Step int

const (
	StepIdle          Step = iota // no continuation pending
	StepAwaitingLevel             // next message is a level name
)

// Conversation holds the pending step of a user outside of quiz sessions.
type Conversation struct {
	UserID    int64
	Step      Step
	UpdatedAt time.Time
}
