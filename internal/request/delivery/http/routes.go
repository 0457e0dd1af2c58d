package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps /requests. Every route needs the acting user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())

	rg.POST("", h.Create)
	rg.GET("", h.ListOwn)
	rg.GET("/all", h.ListOthers)
	rg.GET("/:id", h.Detail)
}
