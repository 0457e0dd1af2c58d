package http

import (
	"shareit/internal/comment"
	"shareit/internal/model"
	"shareit/pkg/response"
)

type createReq struct {
	Text string `json:"text" binding:"required,notblank,max=2000"`
}

func (r createReq) toInput(itemID int64) comment.CreateCommentInput {
	return comment.CreateCommentInput{ItemID: itemID, Text: r.Text}
}

type commentResp struct {
	ID         int64             `json:"id"`
	Text       string            `json:"text"`
	ItemID     int64             `json:"itemId"`
	AuthorName string            `json:"authorName"`
	Created    response.DateTime `json:"created"`
}

func newCommentResp(c model.Comment) commentResp {
	return commentResp{
		ID:         c.ID,
		Text:       c.Text,
		ItemID:     c.ItemID,
		AuthorName: c.AuthorName,
		Created:    response.DateTime(c.Created),
	}
}
