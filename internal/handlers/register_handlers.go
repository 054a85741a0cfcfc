package handlers

import (
	portssvc "github.com/boki-app/boki_backend/internal/core/ports/services"
	"github.com/boki-app/boki_backend/internal/middleware"
	"github.com/boki-app/boki_backend/pkg/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// callerOrAnonymous returns the authenticated caller's user ID when a token
// was presented, or "anonymous". Written records always carry a creator.
func callerOrAnonymous(c *gin.Context) string {
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		return userID
	}
	return "anonymous"
}

// RegisterRoutes wires all HTTP routes onto the engine.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerCustomValidators()

	r.GET("/health", homeHandler)

	if !cfg.IsProduction {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	v1.Use(middleware.OptionalIdentity(cfg.JWTSecret))
	{
		registerAccountRoutes(v1, services.Account)
		registerJournalRoutes(v1, services.Journal, services.Account)
		registerReportingRoutes(v1, services.Reporting)
	}
}
