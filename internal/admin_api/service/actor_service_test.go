package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/matka-slot-ledger/internal/domain/actor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActorServiceImpl_RegisterActor(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockActorRepository)
		svc := NewActorService(mockRepo)

		mockRepo.On("GetByUsername", ctx, "desk-3").Return(nil, nil).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*actor.Actor")).Return(nil).Once()

		a, err := svc.RegisterActor(ctx, "desk-3")
		require.NoError(t, err)
		assert.Equal(t, "desk-3", a.Username)
		assert.True(t, a.Active)
		assert.NotEqual(t, uuid.Nil, a.ID)

		mockRepo.AssertExpectations(t)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		mockRepo := new(MockActorRepository)
		svc := NewActorService(mockRepo)

		existing := &actor.Actor{ID: uuid.New(), Username: "desk-3", Active: true}
		mockRepo.On("GetByUsername", ctx, "desk-3").Return(existing, nil).Once()

		_, err := svc.RegisterActor(ctx, "desk-3")
		var dupErr actor.ErrDuplicateUsername
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "desk-3", dupErr.Username)

		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("EmptyUsername", func(t *testing.T) {
		mockRepo := new(MockActorRepository)
		svc := NewActorService(mockRepo)

		mockRepo.On("GetByUsername", ctx, "").Return(nil, nil).Once()

		_, err := svc.RegisterActor(ctx, "")
		assert.True(t, errors.Is(err, actor.ErrEmptyUsername))
	})
}

func TestActorServiceImpl_GetActorByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mockRepo := new(MockActorRepository)
		svc := NewActorService(mockRepo)

		id := uuid.New()
		mockRepo.On("GetByID", ctx, id).Return(&actor.Actor{ID: id, Username: "desk-3"}, nil).Once()

		a, err := svc.GetActorByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, a.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockActorRepository)
		svc := NewActorService(mockRepo)

		id := uuid.New()
		mockRepo.On("GetByID", ctx, id).Return(nil, actor.ErrActorNotFound{ActorID: id}).Once()

		_, err := svc.GetActorByID(ctx, id)
		assert.True(t, errors.Is(err, actor.ErrActorNotFound{}))
	})
}
