// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/taibuivan/elog/internal/platform/apperr"
	"github.com/taibuivan/elog/internal/platform/dberr"
)

/*
TestWrap maps every driver's empty result to NOT_FOUND and the rest to INTERNAL_ERROR.
*/
func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))

	for _, err := range []error{pgx.ErrNoRows, sql.ErrNoRows, gorm.ErrRecordNotFound, fmt.Errorf("scan: %w", sql.ErrNoRows)} {
		ae := apperr.As(dberr.Wrap(err, "find_term"))
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	}

	cause := errors.New("connection reset")
	wrapped := dberr.Wrap(cause, "list_entries")
	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, ae.Cause.Error(), "list_entries")
}
