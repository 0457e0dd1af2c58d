package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	"shareit/pkg/response"
)

// Create godoc
// @Summary     Comment on an item
// @Description Only users whose booking of the item has already ended may comment.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Acting user"
// @Param       id               path   int       true "Item ID"
// @Param       body             body   createReq true "Comment"
// @Success     200 {object} response.Resp{data=commentResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id}/comment [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	itemID, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, h.reporter)
		return
	}

	cm, err := h.uc.Create(ctx, sc, req.toInput(itemID))
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.OK(c, newCommentResp(cm))
}
