package http

import (
	"caretask/internal/contact"
	"caretask/pkg/log"
)

type handler struct {
	l  log.Logger
	uc contact.UseCase
}

func New(l log.Logger, uc contact.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
