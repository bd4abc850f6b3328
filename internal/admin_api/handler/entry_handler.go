package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matka-slot-ledger/internal/admin_api/service"
	"github.com/matka-slot-ledger/internal/domain/bet"
	"github.com/matka-slot-ledger/internal/domain/shared"
)

// EntryHandler handles HTTP requests for bet entry operations
type EntryHandler struct {
	entryService service.EntryService
	logger       *slog.Logger
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(logger *slog.Logger, entryService service.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
		logger:       logger,
	}
}

// Submit handles submission of a new bet entry. Format failures answer
// 400 before any store interaction; store failures answer 503.
func (h *EntryHandler) Submit(c *gin.Context) {
	var req SubmitEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondValidationFailed(c, "Invalid request body: "+err.Error())
		return
	}

	entry, err := h.entryService.SubmitEntry(c.Request.Context(), req.Number, req.Amount, req.Username, req.Type, req.Date)
	if err != nil {
		h.respondEntryError(c, err)
		return
	}

	RespondCreated(c, mapEntryToResponse(entry))
}

// ListPending lists the staging area: entries recorded but not yet
// promoted for the requested date and variant
func (h *EntryHandler) ListPending(c *gin.Context) {
	variant, err := shared.ParseVariant(c.Query("variant"))
	if err != nil {
		RespondValidationFailed(c, "variant must be jodi or single")
		return
	}

	entries, err := h.entryService.PendingEntries(c.Request.Context(), c.Query("date"), variant)
	if err != nil {
		h.respondEntryError(c, err)
		return
	}

	response := EntryListResponse{Entries: make([]EntryResponse, 0, len(entries))}
	for _, entry := range entries {
		response.Entries = append(response.Entries, mapEntryToResponse(entry))
	}
	RespondOK(c, response)
}

func (h *EntryHandler) respondEntryError(c *gin.Context, err error) {
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
	h.logger.Error("Entry operation failed", "error", err)
	RespondInternalError(c)
}

// mapEntryToResponse maps a bet entry to an entry response DTO
func mapEntryToResponse(entry *bet.Entry) EntryResponse {
	resp := EntryResponse{
		EntryID:   entry.ID.String(),
		Number:    entry.Number,
		Amount:    entry.Amount,
		ActorID:   entry.ActorID,
		Type:      string(entry.Variant),
		Date:      entry.Date,
		Settled:   entry.Settled,
		Slot:      entry.Slot().Label,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
	if entry.SettledAt != nil {
		resp.SettledAt = entry.SettledAt.Format(time.RFC3339)
	}
	return resp
}
