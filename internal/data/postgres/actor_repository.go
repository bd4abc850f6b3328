// Package postgres provides the PostgreSQL implementation of the actor
// registry repository.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/matka-slot-ledger/internal/domain/actor"
	"github.com/matka-slot-ledger/internal/platform/persistence"
)

// ActorRepository implements the actor.Repository interface for PostgreSQL
type ActorRepository struct {
	querier persistence.Querier // Can be *pgxpool.Pool or pgx.Tx
	logger  *slog.Logger
}

// NewActorRepository creates a new PostgreSQL actor repository
func NewActorRepository(logger *slog.Logger, db *persistence.PostgresDB) actor.Repository {
	return &ActorRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Create stores a new actor. A duplicate username surfaces as a database
// constraint error.
func (r *ActorRepository) Create(ctx context.Context, a *actor.Actor) error {
	query := `
		INSERT INTO actors (id, username, active, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.querier.Exec(ctx, query,
		a.ID,
		a.Username,
		a.Active,
		a.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create actor", "username", a.Username, "error", err)
		return fmt.Errorf("failed to create actor: %w", err)
	}

	return nil
}

// GetByID retrieves an actor by its id
func (r *ActorRepository) GetByID(ctx context.Context, id uuid.UUID) (*actor.Actor, error) {
	query := `
		SELECT id, username, active, created_at
		FROM actors
		WHERE id = $1
	`

	var a actor.Actor
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Username,
		&a.Active,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, actor.ErrActorNotFound{ActorID: id}
		}
		r.logger.Error("Failed to get actor", "id", id.String(), "error", err)
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}

	return &a, nil
}

// GetByUsername retrieves an actor by username.
// Returns nil, nil when no actor has the given username.
func (r *ActorRepository) GetByUsername(ctx context.Context, username string) (*actor.Actor, error) {
	query := `
		SELECT id, username, active, created_at
		FROM actors
		WHERE username = $1
	`

	var a actor.Actor
	err := r.querier.QueryRow(ctx, query, username).Scan(
		&a.ID,
		&a.Username,
		&a.Active,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get actor by username", "username", username, "error", err)
		return nil, fmt.Errorf("failed to get actor by username: %w", err)
	}

	return &a, nil
}
