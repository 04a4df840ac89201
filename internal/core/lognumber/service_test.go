// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lognumber_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elog/internal/core/lognumber"
	"github.com/taibuivan/elog/internal/platform/apperr"
	"github.com/taibuivan/elog/internal/platform/sqlite"
	"github.com/taibuivan/elog/internal/platform/storage/storagetest"
)

var (
	insertStatement = regexp.QuoteMeta(`INSERT INTO lognumber_sequence DEFAULT VALUES RETURNING log_number`)
	deleteStatement = regexp.QuoteMeta(`DELETE FROM lognumber_sequence WHERE log_number = $1`)
)

func newMockService(t *testing.T) (*lognumber.Service, sqlmock.Sqlmock) {
	t.Helper()
	handle, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = handle.Close() })
	return lognumber.NewService(sqlite.NewDB(handle), storagetest.Logger()), mock
}

/*
TestService_Next_Commits inserts, deletes and commits.
*/
func TestService_Next_Commits(t *testing.T) {
	service, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(insertStatement).WillReturnRows(sqlmock.NewRows([]string{"log_number"}).AddRow(int64(42)))
	mock.ExpectExec(deleteStatement).WithArgs(int64(42)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	number, err := service.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), number)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestService_Next_RollsBack returns the failure after rolling back.
*/
func TestService_Next_RollsBack(t *testing.T) {
	tests := []struct {
		name   string
		expect func(mock sqlmock.Sqlmock)
	}{
		{
			name: "insert_fails",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertStatement).WillReturnError(errors.New("sequence exhausted"))
			},
		},
		{
			name: "delete_fails",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertStatement).WillReturnRows(sqlmock.NewRows([]string{"log_number"}).AddRow(int64(7)))
				mock.ExpectExec(deleteStatement).WithArgs(int64(7)).WillReturnError(errors.New("disk I/O error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mock := newMockService(t)

			mock.ExpectBegin()
			tt.expect(mock)
			mock.ExpectRollback()

			number, err := service.Next(context.Background())
			require.Error(t, err)
			assert.Zero(t, number)
			assert.Equal(t, "INTERNAL_ERROR", apperr.As(err).Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

/*
TestService_Next_NeverReuses draws increasing numbers from a real sequence
table and leaves it empty.
*/
func TestService_Next_NeverReuses(t *testing.T) {
	store := storagetest.Open(t)
	service := lognumber.NewService(store.DB, storagetest.Logger())
	ctx := context.Background()

	first, err := service.Next(ctx)
	require.NoError(t, err)
	second, err := service.Next(ctx)
	require.NoError(t, err)
	third, err := service.Next(ctx)
	require.NoError(t, err)

	assert.Less(t, first, second)
	assert.Less(t, second, third)

	var remaining int
	require.NoError(t, store.DB.QueryRow(ctx, `SELECT COUNT(*) FROM lognumber_sequence`).Scan(&remaining))
	assert.Zero(t, remaining)
}

/*
TestHandler_Issue answers 201 with the new number.
*/
func TestHandler_Issue(t *testing.T) {
	store := storagetest.Open(t)
	router := chi.NewRouter()
	lognumber.NewHandler(lognumber.NewService(store.DB, storagetest.Logger())).RegisterRoutes(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/lognumbers", nil))

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"lognumber":1}}`, recorder.Body.String())
}
