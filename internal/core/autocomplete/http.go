// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package autocomplete

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/elog/internal/platform/request"
	"github.com/taibuivan/elog/internal/platform/respond"
	"github.com/taibuivan/elog/internal/platform/validate"
)

// ParamQuery carries the text typed so far.
const ParamQuery = "q"

// maxQueryLength bounds the fragment sent to the database.
const maxQueryLength = 255

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves GET /entrymakers, /emails and /references, each reading q.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/entrymakers", handler.complete(handler.service.EntryMakers))
	router.Get("/emails", handler.complete(handler.service.Emails))
	router.Get("/references", handler.complete(handler.service.References))
	return router
}

func (handler *Handler) complete(suggest func(context.Context, string) ([]Suggestion, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		input := requestutil.Query(request, ParamQuery, "")

		if err := new(validate.Validator).MaxLen(ParamQuery, input, maxQueryLength).Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}

		suggestions, err := suggest(request.Context(), input)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, suggestions)
	}
}
