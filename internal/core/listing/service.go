// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package listing serves filtered, tabulated log entry listings.

One request flows through three stages: a fresh [logentry.Filter] is built
and populated from the query string, a [logentry.Executor] runs it, and a
[tabulate.Tabulator] groups the result for display.
*/
package listing

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/taibuivan/elog/internal/core/logentry"
	"github.com/taibuivan/elog/internal/core/tabulate"
	"github.com/taibuivan/elog/internal/core/term"
	"github.com/taibuivan/elog/internal/platform/validate"
	"github.com/taibuivan/elog/pkg/pagination"
)

// # Configuration

// Config holds the listing defaults applied to every request.
type Config struct {
	Strategy       logentry.Strategy
	DateColumn     logentry.DateColumn
	DefaultDays    int
	EntriesPerPage int
	GroupBy        tabulate.GroupBy
	Location       *time.Location

	// BasePath prefixes the links of tabulated cells.
	BasePath string
}

// # Request and Result

// Query is one listing request.
type Query struct {
	// Values are the raw query parameters, see [logentry.Filter.ApplyRequest].
	Values url.Values

	// Logbook and Tag pin the listing to one term, as the logbook and tag
	// pages do. They win over the logbooks and tags parameters.
	Logbook string
	Tag     string

	// GroupBy and Strategy override the configured defaults when set.
	GroupBy  string
	Strategy string
}

// Window is the effective date range of a listing.
type Window struct {
	StartDate int64 `json:"start_date"`
	EndDate   int64 `json:"end_date"`
}

// Result is a tabulated listing.
type Result struct {
	Strategy logentry.Strategy `json:"strategy"`
	Window   Window            `json:"window"`
	Listing  tabulate.Listing  `json:"listing"`
	Pager    pagination.Meta   `json:"-"`
}

// # Service

// Service builds a filter per request and runs it on the selected executor.
type Service struct {
	terms     logentry.TermResolver
	authors   logentry.AuthorResolver
	executors map[logentry.Strategy]logentry.Executor
	config    Config
	clock     func() time.Time
	logger    *slog.Logger
}

// NewService registers executors by their strategy. The configured
// strategy must be among them.
func NewService(terms logentry.TermResolver, authors logentry.AuthorResolver, executors []logentry.Executor, config Config, logger *slog.Logger) (*Service, error) {
	byStrategy := make(map[logentry.Strategy]logentry.Executor, len(executors))
	for _, executor := range executors {
		byStrategy[executor.Strategy()] = executor
	}
	if _, ok := byStrategy[config.Strategy]; !ok {
		return nil, fmt.Errorf("listing: no executor for strategy %q", config.Strategy)
	}
	if config.Location == nil {
		config.Location = time.Local
	}

	return &Service{
		terms:     terms,
		authors:   authors,
		executors: byStrategy,
		config:    config,
		clock:     time.Now,
		logger:    logger,
	}, nil
}

// WithClock returns a copy of the service reading time from clock.
func (service *Service) WithClock(clock func() time.Time) *Service {
	copied := *service
	copied.clock = clock
	return &copied
}

// NewFilter returns a filter carrying the configured defaults.
func (service *Service) NewFilter() *logentry.Filter {
	return logentry.NewFilter(service.terms, service.authors,
		logentry.WithClock(service.clock),
		logentry.WithLocation(service.config.Location),
		logentry.WithDefaultDays(service.config.DefaultDays),
		logentry.WithDateColumn(service.config.DateColumn),
		logentry.WithEntriesPerPage(service.config.EntriesPerPage),
		logentry.WithLogger(service.logger),
	)
}

/*
List runs one listing request.

Parameters:
  - context: context.Context
  - query: Query (raw parameters plus route pins and overrides)

Returns:
  - *Result: the tabulated entries and the effective window
  - error: VALIDATION_ERROR for an unknown grouping or strategy,
    NOT_FOUND for an unknown logbook, tag or user
*/
func (service *Service) List(context context.Context, query Query) (*Result, error) {
	groupBy, executor, err := service.options(query)
	if err != nil {
		return nil, err
	}

	filter, err := service.prepare(context, query)
	if err != nil {
		return nil, err
	}

	entries, err := executor.ResultEntries(context, filter)
	if err != nil {
		return nil, err
	}

	pager := pagination.NewMeta(filter.Paging(), len(entries))
	tabulator := tabulate.NewTabulator(
		tabulate.WithGroupBy(groupBy),
		tabulate.WithDateColumn(filter.DateColumn()),
		tabulate.WithLocation(service.config.Location),
		tabulate.WithBasePath(service.config.BasePath),
	)

	listing, err := tabulator.Tabulate(entries, pager)
	if err != nil {
		return nil, err
	}

	service.logger.DebugContext(context, "listing_rendered",
		slog.String("strategy", string(executor.Strategy())),
		slog.String("group_by", string(groupBy)),
		slog.Int("count", len(entries)),
	)

	return &Result{
		Strategy: executor.Strategy(),
		Window:   Window{StartDate: filter.StartDate(), EndDate: filter.EndDate()},
		Listing:  listing,
		Pager:    pager,
	}, nil
}

// Describe renders the statement the request would execute.
func (service *Service) Describe(context context.Context, query Query) (string, error) {
	_, executor, err := service.options(query)
	if err != nil {
		return "", err
	}

	filter, err := service.prepare(context, query)
	if err != nil {
		return "", err
	}
	return executor.Describe(context, filter)
}

// options validates the grouping and strategy overrides.
func (service *Service) options(query Query) (tabulate.GroupBy, logentry.Executor, error) {
	groupBy := strings.ToUpper(strings.TrimSpace(query.GroupBy))
	if groupBy == "" {
		groupBy = string(service.config.GroupBy)
	}

	strategy := strings.ToLower(strings.TrimSpace(query.Strategy))
	if strategy == "" {
		strategy = string(service.config.Strategy)
	}

	strategies := make([]string, 0, len(service.executors))
	for _, known := range []logentry.Strategy{logentry.StrategySQL, logentry.StrategyEntity} {
		if _, ok := service.executors[known]; ok {
			strategies = append(strategies, string(known))
		}
	}

	v := &validate.Validator{}
	v.OneOf("groupBy", groupBy, tabulate.GroupModes...)
	v.OneOf("strategy", strategy, strategies...)
	if err := v.Err(); err != nil {
		return "", nil, err
	}

	return tabulate.GroupBy(groupBy), service.executors[logentry.Strategy(strategy)], nil
}

func (service *Service) prepare(context context.Context, query Query) (*logentry.Filter, error) {
	filter := service.NewFilter()

	if err := filter.ApplyRequest(context, query.Values); err != nil {
		return nil, err
	}

	if query.Logbook != "" {
		if err := filter.SetLogbook(context, term.ParseRef(query.Logbook)); err != nil {
			return nil, err
		}
	}
	if query.Tag != "" {
		if err := filter.SetTag(context, term.ParseRef(query.Tag)); err != nil {
			return nil, err
		}
	}
	return filter, nil
}
