package http

import (
	"shareit/internal/booking"
	"shareit/internal/model"
	"shareit/pkg/response"
)

type createReq struct {
	ItemID int64             `json:"itemId" binding:"required,gt=0"`
	Start  response.DateTime `json:"start"`
	End    response.DateTime `json:"end"`
}

func (r createReq) validate() error {
	if r.Start.Time().IsZero() || r.End.Time().IsZero() {
		return errMissingDates
	}
	return nil
}

func (r createReq) toInput() booking.CreateBookingInput {
	return booking.CreateBookingInput{
		ItemID: r.ItemID,
		Start:  r.Start.Time(),
		End:    r.End.Time(),
	}
}

type updateStatusReq struct {
	ID       int64 `form:"-"`
	Approved *bool `form:"approved" binding:"required"`
}

func (r updateStatusReq) toInput() booking.UpdateStatusInput {
	return booking.UpdateStatusInput{ID: r.ID, Approved: *r.Approved}
}

type listReq struct {
	State string `form:"state,default=ALL"`
	From  int    `form:"from,default=0"`
	Size  int    `form:"size,default=10"`
}

func (r listReq) toInput() booking.ListInput {
	return booking.ListInput{
		State: r.State,
		Page:  model.Page{From: r.From, Size: r.Size},
	}
}

type itemShortResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookerResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookingResp struct {
	ID      int64             `json:"id"`
	Start   response.DateTime `json:"start"`
	End     response.DateTime `json:"end"`
	Status  string            `json:"status"`
	Item    itemShortResp     `json:"item"`
	Booker  bookerResp        `json:"booker"`
	Version int64             `json:"version"`
}

func newBookingResp(b model.Booking) bookingResp {
	return bookingResp{
		ID:      b.ID,
		Start:   response.DateTime(b.Start),
		End:     response.DateTime(b.End),
		Status:  string(b.Status),
		Item:    itemShortResp{ID: b.Item.ID, Name: b.Item.Name},
		Booker:  bookerResp{ID: b.Booker.ID, Name: b.Booker.Name},
		Version: b.Version,
	}
}

func newListResp(bookings []model.Booking) []bookingResp {
	out := make([]bookingResp, len(bookings))
	for i, b := range bookings {
		out[i] = newBookingResp(b)
	}
	return out
}
