package repository

import "time"

// CreateRequestOptions holds parameters for inserting a new request.
type CreateRequestOptions struct {
	Description string
	RequesterID int64
	Created     time.Time
}

// ListRequestsOptions filters and pages requests. Limit 0 means no limit.
type ListRequestsOptions struct {
	RequesterID        int64
	ExcludeRequesterID int64
	Limit              int
	Offset             int
}
