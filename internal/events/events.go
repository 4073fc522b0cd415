// Package events defines roster change payloads and their Kafka transport.
package events

import "time"

// Actions recorded on a RosterChanged event.
const (
	ActionSignup     = "signup"
	ActionUnregister = "unregister"
)

// RosterChanged is emitted after a roster mutation commits.
type RosterChanged struct {
	Activity         string    `json:"activity"`
	Email            string    `json:"email"`
	Action           string    `json:"action"`
	ParticipantCount int       `json:"participant_count"`
	OccurredAt       time.Time `json:"occurred_at"`
}
