// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package term

import (
	"context"
	"fmt"

	"github.com/taibuivan/elog/internal/platform/database"
	"github.com/taibuivan/elog/internal/platform/database/schema"
	"github.com/taibuivan/elog/internal/platform/dberr"
)

// SQLRepository reads terms from the relational store.
type SQLRepository struct {
	db database.Querier
}

func NewSQLRepository(db database.Querier) *SQLRepository {
	return &SQLRepository{db: db}
}

func (repository *SQLRepository) FindByID(context context.Context, vocabulary Vocabulary, id int64) (*Term, error) {
	return repository.findOne(context, schema.Term.ID, vocabulary, id, "find_term_by_id")
}

func (repository *SQLRepository) FindByName(context context.Context, vocabulary Vocabulary, name string) (*Term, error) {
	return repository.findOne(context, schema.Term.Name, vocabulary, name, "find_term_by_name")
}

func (repository *SQLRepository) findOne(context context.Context, column string, vocabulary Vocabulary, key any, action string) (*Term, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Term.ID, schema.Term.Vocabulary, schema.Term.Name,
		schema.Term.Table,
		schema.Term.Vocabulary, column,
	)

	t := &Term{}
	var vocab string
	if err := repository.db.QueryRow(context, query, string(vocabulary), key).Scan(&t.ID, &vocab, &t.Name); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	t.Vocabulary = Vocabulary(vocab)
	return t, nil
}
