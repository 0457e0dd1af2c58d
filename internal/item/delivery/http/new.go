package http

import (
	"shareit/internal/item"
	"shareit/pkg/log"
	"shareit/pkg/response"
)

type handler struct {
	l        log.Logger
	uc       item.UseCase
	reporter response.Reporter
}

// New creates the HTTP handler of the catalog.
func New(l log.Logger, uc item.UseCase, reporter response.Reporter) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		reporter: reporter,
	}
}
