package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/response"
)

const (
	HealthMessage = "ShareIt API is up"
	HealthVersion = "1.0.0"
	ServiceName   = "shareit"
)

type probeResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	Service string `json:"service"`
	Storage string `json:"storage"`
}

func (srv HTTPServer) probe(status string) probeResp {
	return probeResp{
		Status:  status,
		Message: HealthMessage,
		Version: HealthVersion,
		Service: ServiceName,
		Storage: srv.backend,
	}
}

// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} probeResp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.probe("healthy"))
}

// readyCheck pings the database when the postgres backend is active.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} probeResp
// @Failure 503 {object} response.Resp "Database unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if srv.postgresDB != nil {
		if err := srv.postgresDB.Ping(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck Ping: %v", err)
			response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "database unreachable"), nil)
			return
		}
	}
	response.OK(c, srv.probe("ready"))
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} probeResp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.probe("alive"))
}
