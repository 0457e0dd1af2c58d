package http

import (
	"shareit/internal/request"
	"shareit/pkg/log"
	"shareit/pkg/response"
)

type handler struct {
	l        log.Logger
	uc       request.UseCase
	reporter response.Reporter
}

// New creates the HTTP handler of the request board.
func New(l log.Logger, uc request.UseCase, reporter response.Reporter) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		reporter: reporter,
	}
}
