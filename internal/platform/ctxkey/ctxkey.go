// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey holds the context keys of the per-request values shared by
// the middleware chain, the response writer and the gorm log bridge.
//
// Keys are of an unexported type, so only [ctxutil] can set or read them.
package ctxkey

type key string

const (
	// KeyRequestID carries the X-Request-ID of the listing or lognumber call.
	KeyRequestID key = "request_id"

	// KeyLogger carries the request logger, already tagged with the request id.
	KeyLogger key = "logger"
)
