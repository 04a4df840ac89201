// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and the
query string conventions used by the listing endpoints, so handlers never
touch [chi] or [url.Values] parsing details directly.
*/
package requestutil

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

/*
Param retrieves a named URL parameter from the request.

Parameters are unescaped so that term names containing spaces or slashes
("Ops Log", "RF/Cryo") round-trip through the route.
*/
func Param(request *http.Request, name string) string {
	raw := chi.URLParam(request, name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

/*
Query returns the first value of the named query parameter, or fallback
when the parameter is absent or blank.
*/
func Query(request *http.Request, name, fallback string) string {
	value := strings.TrimSpace(request.URL.Query().Get(name))
	if value == "" {
		return fallback
	}
	return value
}
