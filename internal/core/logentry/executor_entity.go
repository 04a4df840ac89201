// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logentry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/taibuivan/elog/internal/platform/database/schema"
	"github.com/taibuivan/elog/internal/platform/dberr"
)

// Entity fields addressable by a [Condition].
const (
	FieldStatus   = "status"
	FieldAuthor   = "uid"
	FieldLogbooks = "field_logbook"
	FieldTags     = "field_tags"
)

// Condition operators.
const (
	OpGreater = ">"
	OpBetween = "BETWEEN"
	OpIn      = "IN"
	OpNotIn   = "NOT IN"
)

// Condition is one entity query predicate.
type Condition struct {
	Field    string
	Operator string
	Values   []int64
}

func (condition Condition) String() string {
	return fmt.Sprintf("%s %s %v", condition.Field, condition.Operator, condition.Values)
}

// entityPlan is the entity query derived from one [Criteria] snapshot.
type entityPlan struct {
	conditions []Condition
	order      string
	direction  string
	limit      int
	offset     int
}

func buildEntityPlan(criteria Criteria) entityPlan {
	plan := entityPlan{
		order:     orderColumn(criteria),
		direction: criteria.SortDirection.SQL(),
		limit:     criteria.Limit,
		offset:    criteria.Offset,
	}

	plan.conditions = append(plan.conditions,
		Condition{Field: FieldStatus, Operator: OpGreater, Values: []int64{0}},
		Condition{Field: dateColumn(criteria.DateColumn), Operator: OpBetween, Values: []int64{criteria.StartDate, criteria.EndDate}},
	)

	if len(criteria.Users) > 0 {
		plan.conditions = append(plan.conditions, Condition{Field: FieldAuthor, Operator: OpIn, Values: criteria.Users})
	}

	plan.conditions = append(plan.conditions, membershipConditions(FieldLogbooks, criteria.Logbooks)...)
	plan.conditions = append(plan.conditions, membershipConditions(FieldTags, criteria.Tags)...)
	return plan
}

func membershipConditions(field string, membership Membership) []Condition {
	var conditions []Condition
	if membership.Restricted {
		conditions = append(conditions, Condition{Field: field, Operator: OpIn, Values: membership.Included})
	}
	if len(membership.Excluded) > 0 {
		conditions = append(conditions, Condition{Field: field, Operator: OpNotIn, Values: membership.Excluded})
	}
	return conditions
}

// EntityExecutor builds the entity-abstraction query with gorm.
type EntityExecutor struct {
	orm     *gorm.DB
	entries Repository
	logger  *slog.Logger
}

func NewEntityExecutor(orm *gorm.DB, entries Repository, logger *slog.Logger) *EntityExecutor {
	return &EntityExecutor{orm: orm, entries: entries, logger: logger}
}

func (executor *EntityExecutor) Strategy() Strategy { return StrategyEntity }

// apply renders plan onto a gorm session.
//
// Conditions on a multi-valued field are folded into one EXISTS over its
// membership table, so each is tested against the same stored value. An
// entry matches when at least one of its values passes all of them.
func (executor *EntityExecutor) apply(tx *gorm.DB, plan entityPlan) *gorm.DB {
	query := tx.Table(schema.Logentry.Table+" AS e").
		Select(fmt.Sprintf("r.%s AS revision_id, e.%s AS entry_id", schema.LogentryRevision.RevisionID, schema.Logentry.ID)).
		Joins(fmt.Sprintf("JOIN %s r ON r.%s = e.%s AND r.%s = e.%s",
			schema.LogentryRevision.Table,
			schema.LogentryRevision.RevisionID, schema.Logentry.RevisionID,
			schema.LogentryRevision.EntryID, schema.Logentry.ID))

	multi := map[string][]Condition{}
	for _, condition := range plan.conditions {
		switch condition.Field {
		case FieldLogbooks, FieldTags:
			multi[condition.Field] = append(multi[condition.Field], condition)
		case FieldStatus:
			query = query.Where(fmt.Sprintf("r.%s > ?", schema.LogentryRevision.Status), condition.Values[0])
		case FieldAuthor:
			query = query.Where(fmt.Sprintf("r.%s IN ?", schema.LogentryRevision.AuthorID), condition.Values)
		default:
			query = query.Where(fmt.Sprintf("r.%s BETWEEN ? AND ?", condition.Field), condition.Values[0], condition.Values[1])
		}
	}

	for _, field := range []string{FieldLogbooks, FieldTags} {
		if conditions, ok := multi[field]; ok {
			query = existsMembership(query, membershipTable(field), conditions)
		}
	}

	query = query.Order(fmt.Sprintf("%s %s", plan.order, plan.direction)).
		Order(fmt.Sprintf("e.%s %s", schema.Logentry.ID, plan.direction))

	if plan.limit > 0 {
		query = query.Limit(plan.limit).Offset(plan.offset)
	}
	return query
}

func membershipTable(field string) schema.MembershipTable {
	if field == FieldTags {
		return schema.LogentryTag
	}
	return schema.LogentryLogbook
}

func existsMembership(query *gorm.DB, table schema.MembershipTable, conditions []Condition) *gorm.DB {
	clauses := []string{fmt.Sprintf("m.%s = e.%s", table.EntryID, schema.Logentry.ID)}
	var args []any

	for _, condition := range conditions {
		if len(condition.Values) == 0 {
			if condition.Operator == OpIn {
				clauses = append(clauses, "1 = 0")
			}
			continue
		}
		clauses = append(clauses, fmt.Sprintf("m.%s %s ?", table.TermID, condition.Operator))
		args = append(args, condition.Values)
	}

	return query.Where(fmt.Sprintf("EXISTS (SELECT 1 FROM %s m WHERE %s)", table.Table, strings.Join(clauses, " AND ")), args...)
}

func (executor *EntityExecutor) Describe(context context.Context, filter *Filter) (string, error) {
	plan := buildEntityPlan(filter.Criteria())
	statement := executor.orm.WithContext(context).ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []ResultID
		return executor.apply(tx, plan).Find(&rows)
	})
	return statement, nil
}

func (executor *EntityExecutor) ResultIDs(context context.Context, filter *Filter) ([]ResultID, error) {
	plan := buildEntityPlan(filter.Criteria())

	results := make([]ResultID, 0)
	if err := executor.apply(executor.orm.WithContext(context), plan).Scan(&results).Error; err != nil {
		return nil, dberr.Wrap(err, "query_entries_entity")
	}

	results = dedupe(results)
	executor.logger.DebugContext(context, "entries_queried",
		slog.String("strategy", string(StrategyEntity)),
		slog.Int("count", len(results)),
	)
	return results, nil
}

func (executor *EntityExecutor) ResultEntries(context context.Context, filter *Filter) ([]*LogEntry, error) {
	ids, err := executor.ResultIDs(context, filter)
	if err != nil {
		return nil, err
	}
	return loadResults(context, executor.entries, ids)
}
