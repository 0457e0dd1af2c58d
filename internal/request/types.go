package request

import "shareit/internal/model"

// CreateRequestInput is the body of a new item request.
type CreateRequestInput struct {
	Description string
}

// RequestDetail is a request together with the items listed in answer to it.
type RequestDetail struct {
	Request model.ItemRequest
	Items   []model.Item
}
