// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/elog/internal/platform/request"
	"github.com/taibuivan/elog/internal/platform/respond"
)

// Query parameters read by the handler itself; the rest go to the filter.
const (
	ParamGroupBy  = "groupBy"
	ParamStrategy = "strategy"
)

// # Handler Implementation

// Handler exposes entry listings over HTTP.
type Handler struct {
	service *Service
	explain bool
}

// NewHandler returns a listing handler. explain enables the statement
// debugging endpoint.
func NewHandler(service *Service, explain bool) *Handler {
	return &Handler{service: service, explain: explain}
}

// RegisterRoutes mounts the listing endpoints on router.
//
//   - GET /entries
//   - GET /entries/explain          (when enabled)
//   - GET /logbooks/{name}/entries
//   - GET /tags/{name}/entries
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/entries", handler.listEntries)
	if handler.explain {
		router.Get("/entries/explain", handler.explainEntries)
	}
	router.Get("/logbooks/{name}/entries", handler.listLogbookEntries)
	router.Get("/tags/{name}/entries", handler.listTagEntries)
}

/*
GET /api/v1/entries.

Description: Lists published entries matching the filter parameters,
grouped for display.

Request:
  - start_date, end_date: date text, or [date]/[time] pairs
  - logbooks[], tags[]: names or ids
  - entries_per_page, page: int
  - order: date | title | lognumber
  - sort: asc | desc
  - groupBy: NONE | SHIFT | DAY
  - strategy: sql | entity

Response:
  - 200: Result, with the pager in meta
  - 400: unknown groupBy or strategy
  - 404: unknown logbook or tag
*/
func (handler *Handler) listEntries(writer http.ResponseWriter, request *http.Request) {
	handler.list(writer, request, handler.query(request))
}

// GET /api/v1/logbooks/{name}/entries.
func (handler *Handler) listLogbookEntries(writer http.ResponseWriter, request *http.Request) {
	query := handler.query(request)
	query.Logbook = requestutil.Param(request, "name")
	handler.list(writer, request, query)
}

// GET /api/v1/tags/{name}/entries.
func (handler *Handler) listTagEntries(writer http.ResponseWriter, request *http.Request) {
	query := handler.query(request)
	query.Tag = requestutil.Param(request, "name")
	handler.list(writer, request, query)
}

// GET /api/v1/entries/explain renders the statement instead of running it.
func (handler *Handler) explainEntries(writer http.ResponseWriter, request *http.Request) {
	statement, err := handler.service.Describe(request.Context(), handler.query(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"statement": statement})
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request, query Query) {
	result, err := handler.service.List(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, result, result.Pager)
}

func (handler *Handler) query(request *http.Request) Query {
	return Query{
		Values:   request.URL.Query(),
		GroupBy:  requestutil.Query(request, ParamGroupBy, ""),
		Strategy: requestutil.Query(request, ParamStrategy, ""),
	}
}
