// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logentry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/elog/internal/platform/database"
	"github.com/taibuivan/elog/internal/platform/database/schema"
	"github.com/taibuivan/elog/internal/platform/dberr"
)

// SQLExecutor builds the relational-join query.
type SQLExecutor struct {
	db      database.Querier
	entries Repository
	logger  *slog.Logger
}

func NewSQLExecutor(db database.Querier, entries Repository, logger *slog.Logger) *SQLExecutor {
	return &SQLExecutor{db: db, entries: entries, logger: logger}
}

func (executor *SQLExecutor) Strategy() Strategy { return StrategySQL }

// sqlPlan is the statement derived from one [Criteria] snapshot.
type sqlPlan struct {
	query string
	args  []any
}

func (plan sqlPlan) String() string {
	return fmt.Sprintf("%s -- args: %v", plan.query, plan.args)
}

// sqlBuilder numbers placeholders in the order they are written.
type sqlBuilder struct {
	joins []string
	where []string
	args  []any
}

func (builder *sqlBuilder) arg(value any) string {
	builder.args = append(builder.args, value)
	return fmt.Sprintf("$%d", len(builder.args))
}

func (builder *sqlBuilder) list(ids []int64) string {
	placeholders := database.Placeholders(len(builder.args), len(ids))
	builder.args = append(builder.args, database.Int64Args(ids)...)
	return placeholders
}

// membership restricts on one join table.
//
// Included ids are matched through a join on alias. Excluded ids reject
// the entry outright when any of its rows holds one of them.
func (builder *sqlBuilder) membership(table schema.MembershipTable, alias string, condition Membership) {
	if condition.Restricted {
		builder.joins = append(builder.joins, fmt.Sprintf("JOIN %s %s ON %s.%s = e.%s",
			table.Table, alias, alias, table.EntryID, schema.Logentry.ID))

		if len(condition.Included) == 0 {
			builder.where = append(builder.where, "1 = 0")
		} else {
			builder.where = append(builder.where, fmt.Sprintf("%s.%s IN (%s)",
				alias, table.TermID, builder.list(condition.Included)))
		}
	}

	if len(condition.Excluded) > 0 {
		builder.where = append(builder.where, fmt.Sprintf(
			"e.%s NOT IN (SELECT f.%s FROM %s f WHERE f.%s IN (%s))",
			schema.Logentry.ID, table.EntryID, table.Table, table.TermID, builder.list(condition.Excluded)))
	}
}

func buildSQLPlan(criteria Criteria) sqlPlan {
	builder := &sqlBuilder{}
	column := "r." + dateColumn(criteria.DateColumn)

	builder.where = append(builder.where,
		fmt.Sprintf("r.%s > %s", schema.LogentryRevision.Status, builder.arg(0)),
		fmt.Sprintf("%s >= %s", column, builder.arg(criteria.StartDate)),
		fmt.Sprintf("%s <= %s", column, builder.arg(criteria.EndDate)),
	)

	if len(criteria.Users) > 0 {
		builder.where = append(builder.where, fmt.Sprintf("r.%s IN (%s)",
			schema.LogentryRevision.AuthorID, builder.list(criteria.Users)))
	}

	builder.membership(schema.LogentryLogbook, "bf", criteria.Logbooks)
	builder.membership(schema.LogentryTag, "tf", criteria.Tags)

	order := orderColumn(criteria)
	direction := criteria.SortDirection.SQL()

	// The sort key is selected so DISTINCT and ORDER BY agree on PostgreSQL.
	query := fmt.Sprintf(`SELECT DISTINCT r.%s, e.%s, %s
FROM %s e
JOIN %s r ON r.%s = e.%s AND r.%s = e.%s`,
		schema.LogentryRevision.RevisionID, schema.Logentry.ID, order,
		schema.Logentry.Table,
		schema.LogentryRevision.Table,
		schema.LogentryRevision.RevisionID, schema.Logentry.RevisionID,
		schema.LogentryRevision.EntryID, schema.Logentry.ID,
	)

	for _, join := range builder.joins {
		query += "\n" + join
	}
	query += "\nWHERE " + strings.Join(builder.where, "\n  AND ")
	query += fmt.Sprintf("\nORDER BY %s %s, e.%s %s", order, direction, schema.Logentry.ID, direction)

	if criteria.Limit > 0 {
		query += fmt.Sprintf("\nLIMIT %s OFFSET %s", builder.arg(criteria.Limit), builder.arg(criteria.Offset))
	}

	return sqlPlan{query: query, args: builder.args}
}

func (executor *SQLExecutor) Describe(_ context.Context, filter *Filter) (string, error) {
	return buildSQLPlan(filter.Criteria()).String(), nil
}

func (executor *SQLExecutor) ResultIDs(context context.Context, filter *Filter) ([]ResultID, error) {
	plan := buildSQLPlan(filter.Criteria())

	rows, err := executor.db.Query(context, plan.query, plan.args...)
	if err != nil {
		return nil, dberr.Wrap(err, "query_entries_sql")
	}
	defer rows.Close()

	results := make([]ResultID, 0)
	for rows.Next() {
		var (
			result  ResultID
			sortKey any
		)
		if err := rows.Scan(&result.RevisionID, &result.EntryID, &sortKey); err != nil {
			return nil, dberr.Wrap(err, "scan_entry_id")
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_entry_ids")
	}

	results = dedupe(results)
	executor.logger.DebugContext(context, "entries_queried",
		slog.String("strategy", string(StrategySQL)),
		slog.Int("count", len(results)),
	)
	return results, nil
}

func (executor *SQLExecutor) ResultEntries(context context.Context, filter *Filter) ([]*LogEntry, error) {
	ids, err := executor.ResultIDs(context, filter)
	if err != nil {
		return nil, err
	}
	return loadResults(context, executor.entries, ids)
}
