package service

import (
	"context"
	"time"

	"github.com/google/uuid"
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

type MockMessagePublisher struct {
	mock.Mock
}

func (m *MockMessagePublisher) Publish(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockDeadLetterPublisher struct {
	mock.Mock
}

func (m *MockDeadLetterPublisher) PublishToDLQ(ctx context.Context, key string, originalMessageValue []byte, reason string) error {
	args := m.Called(ctx, key, originalMessageValue, reason)
	return args.Error(0)
}

func (m *MockDeadLetterPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockEntrySettler struct {
	mock.Mock
}

func (m *MockEntrySettler) SettleEntry(ctx context.Context, entry *bet.Entry) (bool, error) {
	args := m.Called(ctx, entry)
	return args.Bool(0), args.Error(1)
}
