package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	"shareit/pkg/response"
)

// Create godoc
// @Summary     Post an item request
// @Description Asks the community for an item nobody has listed yet.
// @Tags        Requests
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Acting user"
// @Param       body             body   createReq true "Request"
// @Success     200 {object} response.Resp{data=requestResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "User not found"
// @Router      /requests [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, h.reporter)
		return
	}

	d, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.OK(c, newRequestResp(d))
}

// ListOwn godoc
// @Summary     List my requests
// @Description Newest first, each with the items listed in answer.
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user"
// @Success     200 {object} response.Resp{data=[]requestResp}
// @Failure     404 {object} response.Resp "User not found"
// @Router      /requests [GET]
func (h *handler) ListOwn(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	details, err := h.uc.ListOwn(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListOwn: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.OK(c, newListResp(details))
}

// ListOthers godoc
// @Summary     List other users' requests
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true  "Acting user"
// @Param       from             query  int false "First element index (default 0)"
// @Param       size             query  int false "Page size (default 10)"
// @Success     200 {object} response.Resp{data=[]requestResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "User not found"
// @Router      /requests/all [GET]
func (h *handler) ListOthers(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	req, err := h.processPageReq(c)
	if err != nil {
		response.Error(c, err, h.reporter)
		return
	}

	details, err := h.uc.ListOthers(ctx, sc, req.toPage())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListOthers: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.OK(c, newListResp(details))
}

// Detail godoc
// @Summary     Get an item request
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user"
// @Param       id               path   int true "Request ID"
// @Success     200 {object} response.Resp{data=requestResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /requests/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, h.reporter)
		return
	}

	d, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.OK(c, newRequestResp(d))
}
