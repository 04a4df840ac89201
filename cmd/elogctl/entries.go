// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taibuivan/elog/internal/app"
	"github.com/taibuivan/elog/internal/core/listing"
	"github.com/taibuivan/elog/internal/core/logentry"
	"github.com/taibuivan/elog/internal/platform/validate"
)

// entriesOptions maps the entries flags onto listing request parameters.
type entriesOptions struct {
	logbook  string
	tag      string
	logbooks []string
	tags     []string
	start    string
	end      string
	order    string
	sort     string
	perPage  int
	page     int
	strategy string
	groupBy  string
	format   string
	explain  bool
}

func (options *entriesOptions) query(cmd *cobra.Command) listing.Query {
	values := url.Values{}
	set := func(flag, key, value string) {
		if cmd.Flags().Changed(flag) {
			values.Set(key, value)
		}
	}

	set("start", logentry.ParamStartDate, options.start)
	set("end", logentry.ParamEndDate, options.end)
	set("order", logentry.ParamOrder, options.order)
	set("sort", logentry.ParamSort, options.sort)
	set("per-page", logentry.ParamEntriesPerPage, strconv.Itoa(options.perPage))
	set("page", logentry.ParamPage, strconv.Itoa(options.page))
	for _, ref := range options.logbooks {
		values.Add(logentry.ParamLogbooks, ref)
	}
	for _, ref := range options.tags {
		values.Add(logentry.ParamTags, ref)
	}

	return listing.Query{
		Values:   values,
		Logbook:  options.logbook,
		Tag:      options.tag,
		GroupBy:  options.groupBy,
		Strategy: options.strategy,
	}
}

func newEntriesCmd(flags *globals) *cobra.Command {
	options := &entriesOptions{}

	entriesCmd := &cobra.Command{
		Use:   "entries",
		Short: "List published entries through the configured executor",
		Example: `  elogctl entries --start 2023-08-01 --end 2023-09-15 --logbook Book1
  elogctl entries --logbooks Book1,Book2 --strategy entity --group-by DAY
  elogctl entries --tag Tag1 --explain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := new(validate.Validator).OneOf("format", options.format, "text", "json").Err(); err != nil {
				return err
			}

			query := options.query(cmd)
			return withApp(cmd, flags, func(ctx context.Context, application *app.App) error {
				if options.explain {
					plan, err := application.Listing.Describe(ctx, query)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.OutOrStdout(), plan)
					return err
				}

				result, err := application.Listing.List(ctx, query)
				if err != nil {
					return err
				}

				if options.format == "json" {
					encoder := json.NewEncoder(cmd.OutOrStdout())
					encoder.SetIndent("", "  ")
					return encoder.Encode(result)
				}
				return renderListing(cmd.OutOrStdout(), result)
			})
		},
	}

	flagSet := entriesCmd.Flags()
	flagSet.StringVar(&options.logbook, "logbook", "", "pin the listing to one logbook (name or id)")
	flagSet.StringVar(&options.tag, "tag", "", "pin the listing to one tag (name or id)")
	flagSet.StringSliceVar(&options.logbooks, "logbooks", nil, "included logbooks")
	flagSet.StringSliceVar(&options.tags, "tags", nil, "included tags")
	flagSet.StringVar(&options.start, "start", "", "start date")
	flagSet.StringVar(&options.end, "end", "", "end date")
	flagSet.StringVar(&options.order, "order", "", "sort field: date, title or lognumber")
	flagSet.StringVar(&options.sort, "sort", "", "sort direction: asc or desc")
	flagSet.IntVar(&options.perPage, "per-page", 0, "entries per page, 0 disables paging")
	flagSet.IntVar(&options.page, "page", 0, "zero based page")
	flagSet.StringVar(&options.strategy, "strategy", "", "executor override: sql or entity")
	flagSet.StringVar(&options.groupBy, "group-by", "", "grouping override: NONE, SHIFT or DAY")
	flagSet.StringVar(&options.format, "format", "text", "output format: text or json")
	flagSet.BoolVar(&options.explain, "explain", false, "print the query plan instead of running it")

	return entriesCmd
}
