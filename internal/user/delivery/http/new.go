package http

import (
	"shareit/internal/user"
	"shareit/pkg/log"
	"shareit/pkg/response"
)

type handler struct {
	l        log.Logger
	uc       user.UseCase
	reporter response.Reporter
}

// New creates the HTTP handler of the user domain.
func New(l log.Logger, uc user.UseCase, reporter response.Reporter) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		reporter: reporter,
	}
}
