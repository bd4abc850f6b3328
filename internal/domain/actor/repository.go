package actor

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines actor persistence operations
type Repository interface {
	Create(ctx context.Context, actor *Actor) error

	// GetByID retrieves an actor by id.
	// Returns ErrActorNotFound if the actor doesn't exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Actor, error)

	// GetByUsername retrieves an actor by username.
	// Returns nil, nil when no actor has the given username.
	GetByUsername(ctx context.Context, username string) (*Actor, error)
}

// ErrActorNotFound indicates a missing actor
type ErrActorNotFound struct {
	ActorID uuid.UUID
}

func (e ErrActorNotFound) Error() string {
	return "actor not found: " + e.ActorID.String()
}

// Is implements the errors.Is interface for ErrActorNotFound
func (e ErrActorNotFound) Is(target error) bool {
	t, ok := target.(ErrActorNotFound)
	if !ok {
		return false
	}
	if t.ActorID == uuid.Nil {
		return true
	}
	return e.ActorID == t.ActorID
}
