package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps /items. Every route needs the acting user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())

	rg.POST("", h.Create)
	rg.GET("", h.ListByOwner)
	rg.GET("/search", h.Search)
	rg.GET("/:id", h.Detail)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
