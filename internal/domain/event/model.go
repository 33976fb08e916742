package event

import (
	"context"
	"time"
)

type Type string

const (
	TypeUserRegistered     Type = "user.registered"
	TypeChampionshipOpened Type = "championship.created"
	TypeTeamJoined         Type = "championship.team_joined"
	TypeMatchScheduled     Type = "match.scheduled"
	TypeMatchStatusChanged Type = "match.status_changed"
	TypeMatchSettled       Type = "match.settled"
	TypeGuessPlaced        Type = "guess.placed"
)

// Event is a domain fact published after a successful write.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// Publisher delivers domain events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}
