package actor

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrInactiveActor = errors.New("actor is deactivated")
)

// ErrDuplicateUsername indicates the username is already registered
type ErrDuplicateUsername struct {
	Username string
}

func (e ErrDuplicateUsername) Error() string {
	return "username already registered: " + e.Username
}

// Actor represents a recognized dashboard user. Submissions carrying a
// username are attributed to the matching actor; submissions without one
// stay anonymous and are never coalesced with each other in counts.
type Actor struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewActor creates a new active actor with the given username
func NewActor(username string) (*Actor, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	return &Actor{
		ID:        uuid.New(),
		Username:  username,
		Active:    true,
		CreatedAt: time.Now(),
	}, nil
}
