// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/elog/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, slice.Map([]int{1, 2}, strconv.Itoa))
	assert.Nil(t, slice.Map[int, string](nil, strconv.Itoa))
}

func TestFilter(t *testing.T) {
	pieces := slice.Map(strings.Split(" a, ,b,", ","), strings.TrimSpace)
	assert.Equal(t, []string{"a", "b"}, slice.Filter(pieces, func(s string) bool { return s != "" }))
	assert.Nil(t, slice.Filter([]string{"", ""}, func(s string) bool { return s != "" }))
}
