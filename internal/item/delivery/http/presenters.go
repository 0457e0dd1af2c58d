package http

import (
	"shareit/internal/item"
	"shareit/internal/model"
	"shareit/pkg/response"
)

type createReq struct {
	Name        string `json:"name"        binding:"required,notblank,max=255"`
	Description string `json:"description" binding:"required,notblank,max=2000"`
	Available   *bool  `json:"available"   binding:"required"`
	RequestID   *int64 `json:"requestId"   binding:"omitempty,gt=0"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Available:   *r.Available,
		RequestID:   r.RequestID,
	}
}

type updateReq struct {
	ID          int64  `json:"-"`
	Name        string `json:"name"        binding:"max=255"`
	Description string `json:"description" binding:"max=2000"`
	Available   *bool  `json:"available"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

type pageReq struct {
	From int `form:"from,default=0"`
	Size int `form:"size,default=10"`
}

func (r pageReq) toPage() model.Page {
	return model.Page{From: r.From, Size: r.Size}
}

type searchReq struct {
	pageReq
	Text string `form:"text"`
}

func (r searchReq) toInput() item.SearchInput {
	return item.SearchInput{Text: r.Text, Page: r.toPage()}
}

type itemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		OwnerID:     it.OwnerID,
		RequestID:   it.RequestID,
	}
}

func newItemListResp(items []model.Item) []itemResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = newItemResp(it)
	}
	return out
}

type bookingShortResp struct {
	ID       int64             `json:"id"`
	BookerID int64             `json:"bookerId"`
	Start    response.DateTime `json:"start"`
	End      response.DateTime `json:"end"`
}

func newBookingShortResp(b *model.Booking) *bookingShortResp {
	if b == nil {
		return nil
	}
	return &bookingShortResp{
		ID:       b.ID,
		BookerID: b.Booker.ID,
		Start:    response.DateTime(b.Start),
		End:      response.DateTime(b.End),
	}
}

type commentResp struct {
	ID         int64             `json:"id"`
	Text       string            `json:"text"`
	AuthorName string            `json:"authorName"`
	Created    response.DateTime `json:"created"`
}

type itemDetailResp struct {
	itemResp
	LastBooking *bookingShortResp `json:"lastBooking"`
	NextBooking *bookingShortResp `json:"nextBooking"`
	Comments    []commentResp     `json:"comments"`
}

func newItemDetailResp(d item.ItemDetail) itemDetailResp {
	comments := make([]commentResp, len(d.Comments))
	for i, c := range d.Comments {
		comments[i] = commentResp{
			ID:         c.ID,
			Text:       c.Text,
			AuthorName: c.AuthorName,
			Created:    response.DateTime(c.Created),
		}
	}
	return itemDetailResp{
		itemResp:    newItemResp(d.Item),
		LastBooking: newBookingShortResp(d.LastBooking),
		NextBooking: newBookingShortResp(d.NextBooking),
		Comments:    comments,
	}
}

func newItemDetailListResp(details []item.ItemDetail) []itemDetailResp {
	out := make([]itemDetailResp, len(details))
	for i, d := range details {
		out[i] = newItemDetailResp(d)
	}
	return out
}
