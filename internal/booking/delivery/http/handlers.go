package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	"shareit/pkg/response"
)

// Create godoc
// @Summary     Book an item
// @Description Creates a WAITING booking for [start, end]. Times use 2006-01-02T15:04:05 (UTC).
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Acting user"
// @Param       body             body   createReq true "Booking"
// @Success     201 {object} response.Resp{data=bookingResp}
// @Failure     400 {object} response.Resp "Bad dates or item unavailable"
// @Failure     403 {object} response.Resp "Owner cannot book own item"
// @Failure     404 {object} response.Resp "Item or user not found"
// @Router      /bookings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, h.reporter)
		return
	}

	b, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.Created(c, newBookingResp(b))
}

// UpdateStatus godoc
// @Summary     Approve or reject a booking
// @Description Item owner only. Approving twice is an error; an approved booking can still be rejected.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int  true "Acting user"
// @Param       id               path   int  true "Booking ID"
// @Param       approved         query  bool true "Decision"
// @Success     200 {object} response.Resp{data=bookingResp}
// @Failure     400 {object} response.Resp "Invalid transition"
// @Failure     403 {object} response.Resp "Not the item owner"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Concurrent update"
// @Router      /bookings/{id} [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	req, err := h.processUpdateStatusReq(c)
	if err != nil {
		response.Error(c, err, h.reporter)
		return
	}

	b, err := h.uc.UpdateStatus(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.OK(c, newBookingResp(b))
}

// Detail godoc
// @Summary     Get a booking
// @Description Visible to the booker and the item owner.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user"
// @Param       id               path   int true "Booking ID"
// @Success     200 {object} response.Resp{data=bookingResp}
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, h.reporter)
		return
	}

	b, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.OK(c, newBookingResp(b))
}

// ListForBooker godoc
// @Summary     List my bookings
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Acting user"
// @Param       state            query  string false "ALL, CURRENT, FUTURE, PAST, WAITING or REJECTED"
// @Param       from             query  int    false "First element index (default 0)"
// @Param       size             query  int    false "Page size (default 10)"
// @Success     200 {object} response.Resp{data=[]bookingResp}
// @Failure     400 {object} response.Resp "Unknown state or bad page"
// @Router      /bookings [GET]
func (h *handler) ListForBooker(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, h.reporter)
		return
	}

	bookings, err := h.uc.ListForBooker(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListForBooker: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.OK(c, newListResp(bookings))
}

// ListForOwner godoc
// @Summary     List bookings of my items
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Acting user"
// @Param       state            query  string false "ALL, CURRENT, FUTURE, PAST, WAITING or REJECTED"
// @Param       from             query  int    false "First element index (default 0)"
// @Param       size             query  int    false "Page size (default 10)"
// @Success     200 {object} response.Resp{data=[]bookingResp}
// @Failure     400 {object} response.Resp "Unknown state or bad page"
// @Router      /bookings/owner [GET]
func (h *handler) ListForOwner(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, h.reporter)
		return
	}

	bookings, err := h.uc.ListForOwner(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListForOwner: %v", err)
		response.Error(c, h.mapError(err), h.reporter)
		return
	}

	response.OK(c, newListResp(bookings))
}
