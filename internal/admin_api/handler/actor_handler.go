package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/matka-slot-ledger/internal/admin_api/service"
	"github.com/matka-slot-ledger/internal/domain/actor"
)

// ActorHandler handles HTTP requests for the actor registry
type ActorHandler struct {
	actorService service.ActorService
	logger       *slog.Logger
}

// NewActorHandler creates a new actor handler
func NewActorHandler(logger *slog.Logger, actorService service.ActorService) *ActorHandler {
	return &ActorHandler{
		actorService: actorService,
		logger:       logger,
	}
}

// Register handles registration of a new actor, rejecting duplicate usernames
func (h *ActorHandler) Register(c *gin.Context) {
	var req RegisterActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondValidationFailed(c, "Invalid request body: "+err.Error())
		return
	}

	a, err := h.actorService.RegisterActor(c.Request.Context(), req.Username)
	if err != nil {
		var dupErr actor.ErrDuplicateUsername
		if errors.As(err, &dupErr) {
			RespondConflict(c, "Username already registered")
			return
		}
		h.logger.Error("Failed to register actor", "error", err)
		RespondInternalError(c)
		return
	}

	RespondCreated(c, mapActorToResponse(a))
}

// GetByID retrieves an actor by its ID, returning 404 if not found
func (h *ActorHandler) GetByID(c *gin.Context) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		RespondValidationFailed(c, "Invalid actor ID")
		return
	}

	a, err := h.actorService.GetActorByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, actor.ErrActorNotFound{}) {
			RespondNotFound(c, "Actor not found")
			return
		}
		h.logger.Error("Failed to get actor", "id", idParam, "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, mapActorToResponse(a))
}

// mapActorToResponse maps an actor entity to an actor response DTO
func mapActorToResponse(a *actor.Actor) ActorResponse {
	return ActorResponse{
		ID:        a.ID.String(),
		Username:  a.Username,
		Active:    a.Active,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
