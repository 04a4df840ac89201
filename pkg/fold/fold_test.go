// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package fold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/elog/pkg/fold"
)

func TestContains(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Entry", "%entry%"},
		{"Beam_Dump%", "%beamdump%"},
		{"", "%%"},
		{"ÉCRAN", "%écran%"},
		{"Café", "%café%"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fold.Contains(tt.input), tt.input)
	}
}
