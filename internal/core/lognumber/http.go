// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lognumber

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/elog/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/lognumbers", handler.issue)
}

/*
POST /api/v1/lognumbers.

Response:
  - 201: Issued
  - 500: the sequence transaction failed
*/
func (handler *Handler) issue(writer http.ResponseWriter, request *http.Request) {
	number, err := handler.service.Next(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, Issued{Lognumber: number})
}
