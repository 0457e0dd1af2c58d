package http

import (
	"shareit/internal/model"
	"shareit/internal/request"
	"shareit/pkg/response"
)

type createReq struct {
	Description string `json:"description" binding:"required,notblank,max=2000"`
}

func (r createReq) toInput() request.CreateRequestInput {
	return request.CreateRequestInput{Description: r.Description}
}

type pageReq struct {
	From int `form:"from,default=0"`
	Size int `form:"size,default=10"`
}

func (r pageReq) toPage() model.Page {
	return model.Page{From: r.From, Size: r.Size}
}

type itemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId"`
}

type requestResp struct {
	ID          int64             `json:"id"`
	Description string            `json:"description"`
	RequesterID int64             `json:"requesterId"`
	Created     response.DateTime `json:"created"`
	Items       []itemResp        `json:"items"`
}

func newRequestResp(d request.RequestDetail) requestResp {
	items := make([]itemResp, len(d.Items))
	for i, it := range d.Items {
		items[i] = itemResp{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			OwnerID:     it.OwnerID,
			RequestID:   it.RequestID,
		}
	}
	return requestResp{
		ID:          d.Request.ID,
		Description: d.Request.Description,
		RequesterID: d.Request.RequesterID,
		Created:     response.DateTime(d.Request.Created),
		Items:       items,
	}
}

func newListResp(details []request.RequestDetail) []requestResp {
	out := make([]requestResp, len(details))
	for i, d := range details {
		out[i] = newRequestResp(d)
	}
	return out
}
