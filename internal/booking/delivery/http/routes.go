package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps /bookings. Every route needs the acting user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())

	rg.POST("", h.Create)
	rg.GET("", h.ListForBooker)
	rg.GET("/owner", h.ListForOwner)
	rg.GET("/:id", h.Detail)
	rg.PATCH("/:id", h.UpdateStatus)
}
