package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/response"
)

// Auth reads the acting user from X-Sharer-User-Id into the request scope.
// A missing or malformed header is a 400.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if raw == "" {
			response.Error(c, pkgErrors.NewHTTPErrorf(http.StatusBadRequest, "missing header %s", UserIDHeader), m.reporter)
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, pkgErrors.NewHTTPErrorf(http.StatusBadRequest, "invalid header %s: %q", UserIDHeader, raw), m.reporter)
			return
		}

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: id})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
