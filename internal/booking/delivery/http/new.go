package http

import (
	"shareit/internal/booking"
	"shareit/pkg/log"
	"shareit/pkg/response"
)

type handler struct {
	l        log.Logger
	uc       booking.UseCase
	reporter response.Reporter
}

// New creates the HTTP handler of the booking engine.
func New(l log.Logger, uc booking.UseCase, reporter response.Reporter) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		reporter: reporter,
	}
}
