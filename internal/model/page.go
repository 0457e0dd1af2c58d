package model

import "errors"

const (
	DefaultPageFrom = 0
	DefaultPageSize = 10
)

// ErrInvalidPage is returned for a negative from or a size below one.
var ErrInvalidPage = errors.New("invalid pagination parameters")

// Page is a from/size window over a sorted list. From is an element index;
// it is rounded down to a whole page of Size elements.
type Page struct {
	From int
	Size int
}

// Validate checks from >= 0 and size >= 1.
func (p Page) Validate() error {
	if p.From < 0 || p.Size < 1 {
		return ErrInvalidPage
	}
	return nil
}

// Limit is the number of rows to fetch.
func (p Page) Limit() int {
	return p.Size
}

// Offset is the number of rows to skip: the start of the page containing From.
func (p Page) Offset() int {
	return (p.From / p.Size) * p.Size
}
