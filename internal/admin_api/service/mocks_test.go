package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/matka-slot-ledger/internal/domain/actor"
	"github.com/matka-slot-ledger/internal/domain/bet"
	"github.com/matka-slot-ledger/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *bet.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) ListSettled(ctx context.Context, date string, variant shared.Variant) ([]*bet.Entry, error) {
	args := m.Called(ctx, date, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bet.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListPending(ctx context.Context, date string, variant shared.Variant) ([]*bet.Entry, error) {
	args := m.Called(ctx, date, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bet.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListPendingInWindow(ctx context.Context, date string, variant shared.Variant, start, end time.Time) ([]*bet.Entry, error) {
	args := m.Called(ctx, date, variant, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bet.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListInWindow(ctx context.Context, date string, variant shared.Variant, start, end time.Time) ([]*bet.Entry, error) {
	args := m.Called(ctx, date, variant, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bet.Entry), args.Error(1)
}

func (m *MockEntryRepository) GetSettledBySource(ctx context.Context, sourceID uuid.UUID) (*bet.Entry, error) {
	args := m.Called(ctx, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bet.Entry), args.Error(1)
}

type MockActorRepository struct {
	mock.Mock
}

func (m *MockActorRepository) Create(ctx context.Context, a *actor.Actor) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockActorRepository) GetByID(ctx context.Context, id uuid.UUID) (*actor.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*actor.Actor), args.Error(1)
}

func (m *MockActorRepository) GetByUsername(ctx context.Context, username string) (*actor.Actor, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*actor.Actor), args.Error(1)
}
