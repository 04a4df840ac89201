// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/taibuivan/elog/internal/core/listing"
	"github.com/taibuivan/elog/internal/core/tabulate"
	"github.com/taibuivan/elog/pkg/slice"
)

// renderListing writes a listing as aligned plain-text tables.
func renderListing(w io.Writer, result *listing.Result) error {
	start := time.Unix(result.Window.StartDate, 0).UTC().Format(time.DateOnly)
	end := time.Unix(result.Window.EndDate, 0).UTC().Format(time.DateOnly)
	if _, err := fmt.Fprintf(w, "%s entries, %s to %s\n", result.Strategy, start, end); err != nil {
		return err
	}

	for _, element := range result.Listing.Elements {
		var err error
		switch element.Kind {
		case tabulate.ElementEmpty:
			_, err = fmt.Fprintf(w, "\n%s\n", element.Message)
		case tabulate.ElementTable:
			err = renderTable(w, element.Table)
		case tabulate.ElementPager:
			err = renderPager(w, element)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, table *tabulate.Table) error {
	if table.Heading != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", table.Heading); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, strings.Join(table.Header, "\t"))
	for _, row := range table.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cellText(cell)
		}
		fmt.Fprintln(writer, strings.Join(cells, "\t"))
	}
	return writer.Flush()
}

func cellText(cell tabulate.Cell) string {
	if len(cell.Links) == 0 {
		return cell.Text
	}
	labels := slice.Map(cell.Links, func(link tabulate.Link) string { return link.Label })
	return strings.Join(labels, ", ")
}

func renderPager(w io.Writer, element tabulate.Element) error {
	if element.Pager == nil || element.Pager.Limit <= 0 {
		return nil
	}
	pager := element.Pager
	_, err := fmt.Fprintf(w, "\npage %d (%d shown, next: %t)\n", pager.Page, pager.Count, pager.HasNext)
	return err
}
