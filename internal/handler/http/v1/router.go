package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	limited := RateLimitMiddleware(h.cfg.RateLimitLimit, h.cfg.RateLimitPeriod, h.logger)

	// Заявители: регистрация, отчёты и проверка
	api.POST("/users", h.createUser)
	api.POST("/reports", limited, h.submitReport)

	incidents := api.Group("/incidents")
	{
		incidents.GET("/nearby", h.getNearby)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/votes", limited, h.castVote)
		incidents.GET("/:id/status", h.getUserStatus)
		incidents.GET("/:id/notes", h.listNotes)
		incidents.POST("/:id/notes", h.addNote)
	}

	// Ответчики: только с API-ключом
	auth := ResponderAuthMiddleware(h.cfg.APIKeys, h.logger)
	responders := api.Group("/responders", auth)
	{
		responders.POST("", h.registerResponder)
		responders.GET("/:id", h.getResponder)
		responders.GET("/:id/incidents", h.getResponderFeed)
	}
	work := api.Group("/incidents", auth)
	{
		work.POST("/:id/claim", h.claimIncident)
		work.PUT("/:id/status", h.setStatus)
		work.PUT("/:id/priority", h.setPriority)
		work.PUT("/:id/responder-update", h.updateResponderNote)
	}

	api.GET("/uploads/:name", h.getUpload)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
