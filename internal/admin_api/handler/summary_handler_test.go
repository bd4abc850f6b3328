package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/matka-slot-ledger/internal/admin_api/service"
	"github.com/matka-slot-ledger/internal/aggregate"
	"github.com/matka-slot-ledger/internal/domain/shared"
	"github.com/matka-slot-ledger/internal/timeslot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) DaySummary(ctx context.Context, date string, variant shared.Variant) ([]aggregate.SummaryItem, error) {
	args := m.Called(ctx, date, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]aggregate.SummaryItem), args.Error(1)
}

func (m *MockSummaryService) SlotSummaries(ctx context.Context, date string, variant shared.Variant) ([]service.SlotReport, error) {
	args := m.Called(ctx, date, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.SlotReport), args.Error(1)
}

func (m *MockSummaryService) CurrentSlotPreview(ctx context.Context, variant shared.Variant) (*service.SlotReport, string, error) {
	args := m.Called(ctx, variant)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*service.SlotReport), args.String(1), args.Error(2)
}

func TestSummaryHandler_Day(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockSummaryService)
		handler := NewSummaryHandler(logger, mockService)

		items := []aggregate.SummaryItem{
			{Number: "1", Total: 100, UserCount: 1, MinAmount: 100},
			{Number: "2", Total: 0, UserCount: 0, MinAmount: 0},
		}
		mockService.On("DaySummary", mock.Anything, "2026-09-01", shared.VariantSingle).Return(items, nil)

		router := setupTestRouter()
		router.GET("/summaries/day", handler.Day)

		req, _ := http.NewRequest(http.MethodGet, "/summaries/day?date=2026-09-01&variant=single", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		responseBody := decodeData[DaySummaryResponse](t, rr.Body.Bytes())
		assert.Equal(t, "2026-09-01", responseBody.Date)
		assert.Equal(t, "single", responseBody.Type)
		require.Len(t, responseBody.Items, 2)
		assert.Equal(t, int64(100), responseBody.Items[0].Total)
	})

	t.Run("BadVariant", func(t *testing.T) {
		mockService := new(MockSummaryService)
		handler := NewSummaryHandler(logger, mockService)

		router := setupTestRouter()
		router.GET("/summaries/day", handler.Day)

		req, _ := http.NewRequest(http.MethodGet, "/summaries/day?date=2026-09-01&variant=", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "DaySummary")
	})

	t.Run("StoreUnavailable", func(t *testing.T) {
		mockService := new(MockSummaryService)
		handler := NewSummaryHandler(logger, mockService)

		storeErr := fmt.Errorf("failed to list settled entries: %w", shared.ErrQueryRejected)
		mockService.On("DaySummary", mock.Anything, "2026-09-01", shared.VariantSingle).Return(nil, storeErr)

		router := setupTestRouter()
		router.GET("/summaries/day", handler.Day)

		req, _ := http.NewRequest(http.MethodGet, "/summaries/day?date=2026-09-01&variant=single", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "STORE_UNAVAILABLE", decodeError(t, rr.Body.Bytes()).Code)
	})
}

func TestSummaryHandler_Slots(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockSummaryService)
		handler := NewSummaryHandler(logger, mockService)

		slot := timeslot.SlotFor(time.Date(2026, 9, 1, 9, 5, 0, 0, time.UTC))
		reports := []service.SlotReport{
			{
				Slot:     slot,
				Items:    []aggregate.SummaryItem{{Number: "09", Total: 100, UserCount: 1, MinAmount: 100}},
				LeastBet: []string{"09", "-", "-"},
			},
		}
		mockService.On("SlotSummaries", mock.Anything, "2026-09-01", shared.VariantJodi).Return(reports, nil)

		router := setupTestRouter()
		router.GET("/summaries/slots", handler.Slots)

		req, _ := http.NewRequest(http.MethodGet, "/summaries/slots?date=2026-09-01&variant=jodi", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		responseBody := decodeData[SlotSummariesResponse](t, rr.Body.Bytes())
		require.Len(t, responseBody.Slots, 1)
		assert.Equal(t, "09:00 - 09:15", responseBody.Slots[0].Slot)
		assert.Equal(t, []string{"09", "-", "-"}, responseBody.Slots[0].LeastBet)
	})
}

func TestSummaryHandler_Current(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockSummaryService)
		handler := NewSummaryHandler(logger, mockService)

		slot := timeslot.SlotFor(time.Date(2026, 9, 1, 12, 7, 0, 0, time.UTC))
		report := &service.SlotReport{
			Slot:     slot,
			Items:    []aggregate.SummaryItem{{Number: "3", Total: 120, UserCount: 1, MinAmount: 120}},
			LeastBet: []string{"3", "-", "-"},
		}
		mockService.On("CurrentSlotPreview", mock.Anything, shared.VariantSingle).Return(report, "2026-09-01", nil)

		router := setupTestRouter()
		router.GET("/summaries/current", handler.Current)

		req, _ := http.NewRequest(http.MethodGet, "/summaries/current?variant=single", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		responseBody := decodeData[CurrentSlotResponse](t, rr.Body.Bytes())
		assert.Equal(t, "2026-09-01", responseBody.Date)
		assert.Equal(t, "12:00 - 12:15", responseBody.Slot.Slot)
	})
}
