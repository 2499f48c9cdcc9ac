package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/user-directory/internal/service"
)

// Register mounts all public routes on the given engine: HTML pages, the JSON API,
// health probes and docs. Middleware is the caller's business.
func Register(r *gin.Engine, repo Pinger, userSvc service.UserService, logger zerolog.Logger) {
	h := NewHealthHandler(repo)

	r.SetHTMLTemplate(Templates())

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	NewPageHandler(userSvc, logger).Register(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewUserHandler(userSvc).Register(api)
	}
}
