package httpapi

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/candidatetracker/internal/common"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// NewRouter builds the gin engine with every route of the API.
func NewRouter(h *Handler, origins []string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(logger), Recovery(logger), cors.New(corsConfig(origins)))

	r.GET("/health", h.Health)
	r.HEAD("/health", h.Health)
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	authed := r.Group("/candidates", Authenticated(h.users))
	{
		authed.POST("", h.CreateCandidate)
		authed.POST("/:id/resume", h.ResumeUploadURL)
		authed.PUT("/:id/resume", h.ConfirmResume)

		admin := authed.Group("", RequireRole(common.RoleAdmin))
		admin.GET("", h.ListCandidates)
		admin.PUT("/:id/mark-viewed", h.MarkViewed)
		admin.DELETE("/:id", h.DeleteCandidate)
	}

	return r
}
