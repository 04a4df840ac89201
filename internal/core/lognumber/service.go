// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package lognumber issues the unique, increasing numbers printed on entries.

A number is drawn by inserting a throwaway row into the sequence table and
deleting it again in the same transaction. The table stays empty while its
generator (BIGSERIAL on PostgreSQL, AUTOINCREMENT on SQLite) keeps counting,
so an issued number is never handed out twice.
*/
package lognumber

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/elog/internal/platform/database"
	"github.com/taibuivan/elog/internal/platform/database/schema"
	"github.com/taibuivan/elog/internal/platform/dberr"
)

// Issued is the response body of a new number.
type Issued struct {
	Lognumber int64 `json:"lognumber"`
}

type Service struct {
	db     database.DB
	logger *slog.Logger
}

func NewService(db database.DB, logger *slog.Logger) *Service {
	return &Service{db: db, logger: logger}
}

/*
Next draws the next log number.

Any failure rolls the transaction back and is returned to the caller; no
number is issued in that case.

Returns:
  - int64: the new number
  - error: INTERNAL_ERROR wrapping the storage failure
*/
func (service *Service) Next(context context.Context) (int64, error) {
	transaction, err := service.db.Begin(context)
	if err != nil {
		return 0, dberr.Wrap(err, "begin_lognumber")
	}

	// Rolls back unless committed below
	defer transaction.Rollback(context)

	insert := fmt.Sprintf(`INSERT INTO %s DEFAULT VALUES RETURNING %s`,
		schema.LognumberSequence.Table, schema.LognumberSequence.LogNumber)

	var number int64
	if err := transaction.QueryRow(context, insert).Scan(&number); err != nil {
		return 0, service.fail(context, err, "insert_lognumber")
	}

	remove := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.LognumberSequence.Table, schema.LognumberSequence.LogNumber)

	if _, err := transaction.Exec(context, remove, number); err != nil {
		return 0, service.fail(context, err, "delete_lognumber")
	}

	if err := transaction.Commit(context); err != nil {
		return 0, service.fail(context, err, "commit_lognumber")
	}

	service.logger.InfoContext(context, "lognumber_issued", slog.Int64("lognumber", number))
	return number, nil
}

func (service *Service) fail(context context.Context, err error, action string) error {
	service.logger.ErrorContext(context, "lognumber_failed",
		slog.String("action", action),
		slog.Any("error", err),
	)
	return dberr.Wrap(err, action)
}
