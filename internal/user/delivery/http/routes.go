package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps /users. Users are managed without the acting-user header.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Detail)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
