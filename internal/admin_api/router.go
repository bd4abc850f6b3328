package admin_api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matka-slot-ledger/internal/admin_api/handler"
	"github.com/matka-slot-ledger/internal/admin_api/middleware"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	entryHandler *handler.EntryHandler,
	summaryHandler *handler.SummaryHandler,
	actorHandler *handler.ActorHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		// Bet entry operations
		entries := v1.Group("/entries")
		{
			entries.POST("", entryHandler.Submit)
			entries.GET("/pending", entryHandler.ListPending)
		}

		// Aggregate read operations
		summaries := v1.Group("/summaries")
		{
			summaries.GET("/day", summaryHandler.Day)
			summaries.GET("/slots", summaryHandler.Slots)
			summaries.GET("/current", summaryHandler.Current)
		}

		// Actor registry
		actors := v1.Group("/actors")
		{
			actors.POST("", actorHandler.Register)
			actors.GET("/:id", actorHandler.GetByID)
		}
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
