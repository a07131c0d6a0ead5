package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	if h.cfg != nil && h.cfg.MaxRequestBytes > 0 {
		protected.Use(BodyLimitMiddleware(h.cfg.MaxRequestBytes))
	}
	if h.cfg != nil && len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	// Маршруты для управления инцидентами
	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id", h.updateIncident)
		incidents.POST("/:id/updates", h.addIncidentUpdate)
	}

	// Справочники для заполнения ссылок инцидента
	protected.GET("/users", h.listUsers)
	protected.GET("/cars", h.listCars)
	protected.GET("/car-readings", h.listCarReadings)
}
