// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/elog/pkg/pagination"
)

/*
TestParams_Offset verifies the zero-based page arithmetic.
*/
func TestParams_Offset(t *testing.T) {
	tests := []struct {
		name   string
		params pagination.Params
		offset int
	}{
		{"first_page", pagination.Params{Page: 0, Limit: 100}, 0},
		{"third_page", pagination.Params{Page: 2, Limit: 100}, 200},
		{"negative_page", pagination.Params{Page: -3, Limit: 100}, 0},
		{"paging_disabled", pagination.Params{Page: 4, Limit: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.offset, tt.params.Offset())
		})
	}
}

/*
TestNewMeta covers the pager flags for full, partial and unpaged results.
*/
func TestNewMeta(t *testing.T) {
	full := pagination.NewMeta(pagination.Params{Page: 1, Limit: 2}, 2)
	assert.True(t, full.HasPrev)
	assert.True(t, full.HasNext)

	partial := pagination.NewMeta(pagination.Params{Page: 0, Limit: 2}, 1)
	assert.False(t, partial.HasPrev)
	assert.False(t, partial.HasNext)

	unpaged := pagination.NewMeta(pagination.Params{Page: 5, Limit: 0}, 40)
	assert.Equal(t, 0, unpaged.Page)
	assert.False(t, unpaged.HasNext)
	assert.Equal(t, 40, unpaged.Count)
}
