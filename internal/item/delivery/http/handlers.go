package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	"shareit/pkg/response"
)

// Create godoc
// @Summary     List a new item
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Acting user"
// @Param       body             body   createReq true "Item"
// @Success     201 {object} response.Resp{data=itemResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "User or request not found"
// @Router      /items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, h.reporter)
		return
	}

	it, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.Created(c, newItemResp(it))
}

// Update godoc
// @Summary     Update an item
// @Description Owner only. Blank fields keep their value.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Acting user"
// @Param       id               path   int       true "Item ID"
// @Param       body             body   updateReq true "Fields to update"
// @Success     200 {object} response.Resp{data=itemResp}
// @Failure     403 {object} response.Resp "Not the owner"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, h.reporter)
		return
	}

	it, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.OK(c, newItemResp(it))
}

// Delete godoc
// @Summary     Delete an item
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user"
// @Param       id               path   int true "Item ID"
// @Success     200 {object} response.Resp
// @Failure     403 {object} response.Resp "Not the owner"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, h.reporter)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.OK(c, nil)
}

// Detail godoc
// @Summary     Get an item
// @Description Comments are always included; the owner also sees the last and next booking.
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user"
// @Param       id               path   int true "Item ID"
// @Success     200 {object} response.Resp{data=itemDetailResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id} [GET]
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

	response.OK(c, newItemDetailResp(d))
}

// ListByOwner godoc
// @Summary     List my items
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true  "Acting user"
// @Param       from             query  int false "First element index (default 0)"
// @Param       size             query  int false "Page size (default 10)"
// @Success     200 {object} response.Resp{data=[]itemDetailResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /items [GET]
func (h *handler) ListByOwner(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	req, err := h.processPageReq(c)
	if err != nil {
		response.Error(c, err, h.reporter)
		return
	}

	details, err := h.uc.ListByOwner(ctx, sc, req.toPage())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByOwner: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.OK(c, newItemDetailListResp(details))
}

// Search godoc
// @Summary     Search available items
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Acting user"
// @Param       text             query  string false "Text to look for in name or description"
// @Param       from             query  int    false "First element index (default 0)"
// @Param       size             query  int    false "Page size (default 10)"
// @Success     200 {object} response.Resp{data=[]itemResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /items/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, h.reporter)
		return
	}

	items, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.OK(c, newItemListResp(items))
}
