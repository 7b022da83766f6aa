package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the extraction endpoint. limit runs before the
// handler; pass nil to leave the route unthrottled.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, limit gin.HandlerFunc) {
	handlers := []gin.HandlerFunc{h.Extract}
	if limit != nil {
		handlers = append([]gin.HandlerFunc{limit}, handlers...)
	}
	rg.POST("/extractions", handlers...)
}
