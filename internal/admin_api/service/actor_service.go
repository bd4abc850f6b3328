package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/matka-slot-ledger/internal/domain/actor"
)

// ActorServiceImpl implements the ActorService interface
type ActorServiceImpl struct {
	actorRepo actor.Repository
}

// NewActorService creates a new actor service
func NewActorService(actorRepo actor.Repository) ActorService {
	return &ActorServiceImpl{
		actorRepo: actorRepo,
	}
}

// RegisterActor creates a new actor, rejecting duplicate usernames
func (s *ActorServiceImpl) RegisterActor(ctx context.Context, username string) (*actor.Actor, error) {
	existing, err := s.actorRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}
	if existing != nil {
		return nil, actor.ErrDuplicateUsername{Username: username}
	}

	a, err := actor.NewActor(username)
	if err != nil {
		return nil, err
	}

	if err := s.actorRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create actor: %w", err)
	}

	return a, nil
}

// GetActorByID retrieves an actor by its id, returns ErrActorNotFound if missing
func (s *ActorServiceImpl) GetActorByID(ctx context.Context, id uuid.UUID) (*actor.Actor, error) {
	return s.actorRepo.GetByID(ctx, id)
}
