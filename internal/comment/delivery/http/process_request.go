package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "shareit/pkg/errors"
)

func (h *handler) processCreateReq(c *gin.Context) (int64, createReq, error) {
	var req createReq

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || itemID <= 0 {
		return 0, req, errInvalidID
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		return 0, req, pkgErrors.NewBadRequest(err)
	}
	return itemID, req, nil
}
