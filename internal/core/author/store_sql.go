// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/elog/internal/platform/database"
	"github.com/taibuivan/elog/internal/platform/database/schema"
	"github.com/taibuivan/elog/internal/platform/dberr"
	"github.com/taibuivan/elog/pkg/fold"
)

type SQLRepository struct {
	db database.Querier
}

func NewSQLRepository(db database.Querier) *SQLRepository {
	return &SQLRepository{db: db}
}

func (repository *SQLRepository) selectColumns() string {
	return strings.Join(schema.Account.Columns(), ", ")
}

func (repository *SQLRepository) FindByID(context context.Context, id int64) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		repository.selectColumns(), schema.Account.Table, schema.Account.ID)

	a := &Author{}
	if err := repository.db.QueryRow(context, query, id).Scan(&a.ID, &a.Name, &a.FirstName, &a.LastName, &a.Mail); err != nil {
		return nil, dberr.Wrap(err, "find_author_by_id")
	}
	return a, nil
}

func (repository *SQLRepository) FindByName(context context.Context, name string) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		repository.selectColumns(), schema.Account.Table, schema.Account.Name)

	a := &Author{}
	if err := repository.db.QueryRow(context, query, name).Scan(&a.ID, &a.Name, &a.FirstName, &a.LastName, &a.Mail); err != nil {
		return nil, dberr.Wrap(err, "find_author_by_name")
	}
	return a, nil
}

func (repository *SQLRepository) FindMany(context context.Context, ids []int64) (map[int64]*Author, error) {
	authors := make(map[int64]*Author, len(ids))
	if len(ids) == 0 {
		return authors, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s IN (%s)`,
		repository.selectColumns(), schema.Account.Table, schema.Account.ID,
		database.Placeholders(0, len(ids)))

	rows, err := repository.db.Query(context, query, database.Int64Args(ids)...)
	if err != nil {
		return nil, dberr.Wrap(err, "find_authors")
	}
	defer rows.Close()

	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.Name, &a.FirstName, &a.LastName, &a.Mail); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors[a.ID] = a
	}

	return authors, dberr.Wrap(rows.Err(), "iterate_authors")
}

func (repository *SQLRepository) Matching(context context.Context, fragment string, limit int) ([]*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE LOWER(%s) LIKE $1 OR LOWER(%s) LIKE $1 OR LOWER(%s) LIKE $1
		ORDER BY %s ASC
		LIMIT $2
	`,
		repository.selectColumns(), schema.Account.Table,
		schema.Account.Name, schema.Account.FirstName, schema.Account.LastName,
		schema.Account.Name,
	)

	rows, err := repository.db.Query(context, query, fold.Contains(fragment), limit)
	if err != nil {
		return nil, dberr.Wrap(err, "match_authors")
	}
	defer rows.Close()

	var authors []*Author
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.Name, &a.FirstName, &a.LastName, &a.Mail); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	return authors, dberr.Wrap(rows.Err(), "iterate_authors")
}
