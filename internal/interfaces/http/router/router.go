package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shoplite/backend/internal/domain/shared"
	"github.com/shoplite/backend/internal/infrastructure/logger"
	"github.com/shoplite/backend/internal/interfaces/http/handler"
	"github.com/shoplite/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Dependencies holds everything the router needs wired in
type Dependencies struct {
	Logger           *zap.Logger
	HealthHandler    *handler.HealthHandler
	ReturnHandler    *handler.ReturnHandler
	IdempotencyStore shared.IdempotencyStore
	IdempotencyTTL   time.Duration
}

// New builds the gin engine with all routes and middleware
func New(deps Dependencies) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(logger.Recovery(deps.Logger))

	r.GET("/healthz", deps.HealthHandler.Health)

	v1 := r.Group("/api/v1")
	{
		ret := v1.Group("/returns")
		{
			ret.POST("", middleware.Idempotency(deps.IdempotencyStore, deps.IdempotencyTTL), deps.ReturnHandler.Create)
			ret.GET("", deps.ReturnHandler.List)
			ret.GET("/summary", deps.ReturnHandler.Summary)
			ret.GET("/:id", deps.ReturnHandler.GetByID)
		}

		v1.GET("/invoices/:id/returnable", deps.ReturnHandler.Returnable)
	}

	return r
}
