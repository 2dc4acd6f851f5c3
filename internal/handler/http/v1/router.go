package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Все маршруты, кроме health-check, защищены API-ключом.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	api.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Маршруты для управления семьями и участниками
	families := api.Group("/families")
	{
		families.POST("", h.createFamily)
		families.POST("/join", h.joinFamily)
		families.GET("/:id", h.getFamily)
		families.POST("/:id/invites", h.createInvite)
		families.GET("/:id/alerts", h.listAlerts)
		families.GET("/:id/stats", h.getStats)
	}

	// Маршруты для приема и чтения местоположений
	api.POST("/location", h.recordLocation)
	api.GET("/location/last", h.getLastLocation)

	// Маршрут для подтверждения оповещений
	api.POST("/alerts/:id/ack", h.acknowledgeAlert)
}
