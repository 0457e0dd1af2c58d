package http

import (
	"shareit/internal/comment"
	"shareit/pkg/log"
	"shareit/pkg/response"
)

type handler struct {
	l        log.Logger
	uc       comment.UseCase
	reporter response.Reporter
}

// New creates the HTTP handler of the comment ledger.
func New(l log.Logger, uc comment.UseCase, reporter response.Reporter) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		reporter: reporter,
	}
}
