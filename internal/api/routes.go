package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the service routes on the engine.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/health", h.health)
	r.POST("/generate-ppt", h.generatePPT)
}
