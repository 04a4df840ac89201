// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for paged listings.
//
// # Overview
//
// Pages are zero-based, following the pager convention of the logbook
// listing pages: "?page=0" is the first page. A limit of zero or less
// disables paging entirely.
package pagination

const (
	// FirstPage is the index of the first page.
	FirstPage = 0
)

// Params holds the requested page and page size of a listing.
type Params struct {
	Page  int
	Limit int
}

// Enabled reports whether results are paged at all.
func (p Params) Enabled() bool {
	return p.Limit > 0
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	if !p.Enabled() || p.Page <= FirstPage {
		return 0
	}
	return p.Page * p.Limit
}

// Meta is the pager included in listing responses.
type Meta struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Count   int  `json:"count"`
	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`
}

// NewMeta constructs pager metadata for a page holding count rows.
//
// Without a total count the next page is assumed to exist whenever the
// current page came back full.
func NewMeta(params Params, count int) Meta {
	page := params.Page
	if page < FirstPage || !params.Enabled() {
		page = FirstPage
	}

	return Meta{
		Page:    page,
		Limit:   params.Limit,
		Count:   count,
		HasPrev: params.Enabled() && page > FirstPage,
		HasNext: params.Enabled() && count >= params.Limit,
	}
}
