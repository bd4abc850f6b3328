package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matka-slot-ledger/internal/admin_api/service"
	"github.com/matka-slot-ledger/internal/domain/shared"
)

// SummaryHandler handles HTTP requests for aggregate read operations
type SummaryHandler struct {
	summaryService service.SummaryService
	logger         *slog.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(logger *slog.Logger, summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		logger:         logger,
	}
}

// Day returns the full-day settled aggregate for a date and variant
func (h *SummaryHandler) Day(c *gin.Context) {
	variant, err := shared.ParseVariant(c.Query("variant"))
	if err != nil {
		RespondValidationFailed(c, "variant must be jodi or single")
		return
	}
	date := c.Query("date")

	items, err := h.summaryService.DaySummary(c.Request.Context(), date, variant)
	if err != nil {
		h.respondSummaryError(c, err)
		return
	}

	RespondOK(c, DaySummaryResponse{
		Date:  date,
		Type:  string(variant),
		Items: items,
	})
}

// Slots returns the per-slot settled breakdown for a date and variant,
// most recent slot first, with the least-bet triple per slot
func (h *SummaryHandler) Slots(c *gin.Context) {
	variant, err := shared.ParseVariant(c.Query("variant"))
	if err != nil {
		RespondValidationFailed(c, "variant must be jodi or single")
		return
	}
	date := c.Query("date")

	reports, err := h.summaryService.SlotSummaries(c.Request.Context(), date, variant)
	if err != nil {
		h.respondSummaryError(c, err)
		return
	}

	response := SlotSummariesResponse{
		Date:  date,
		Type:  string(variant),
		Slots: make([]SlotSummaryResponse, 0, len(reports)),
	}
	for _, report := range reports {
		response.Slots = append(response.Slots, mapSlotReportToResponse(report))
	}
	RespondOK(c, response)
}

// Current returns the live preview of the slot in progress, pending
// entries included
func (h *SummaryHandler) Current(c *gin.Context) {
	variant, err := shared.ParseVariant(c.Query("variant"))
	if err != nil {
		RespondValidationFailed(c, "variant must be jodi or single")
		return
	}

	report, date, err := h.summaryService.CurrentSlotPreview(c.Request.Context(), variant)
	if err != nil {
		h.respondSummaryError(c, err)
		return
	}

	RespondOK(c, CurrentSlotResponse{
		Date: date,
		Type: string(variant),
		Slot: mapSlotReportToResponse(*report),
	})
}

func (h *SummaryHandler) respondSummaryError(c *gin.Context, err error) {
	var vErr shared.ValidationError
	if errors.As(err, &vErr) {
		RespondValidationFailed(c, vErr.Error())
		return
	}
	if errors.Is(err, shared.ErrStoreUnavailable) || errors.Is(err, shared.ErrQueryRejected) {
		h.logger.Error("Entry store failure", "error", err)
		RespondStoreUnavailable(c)
		return
	}
	h.logger.Error("Summary operation failed", "error", err)
	RespondInternalError(c)
}

// mapSlotReportToResponse maps a slot report to its response DTO
func mapSlotReportToResponse(report service.SlotReport) SlotSummaryResponse {
	return SlotSummaryResponse{
		Slot:     report.Slot.Label,
		Start:    report.Slot.Start.Format(time.RFC3339),
		End:      report.Slot.End.Format(time.RFC3339),
		Items:    report.Items,
		LeastBet: report.LeastBet,
	}
}
