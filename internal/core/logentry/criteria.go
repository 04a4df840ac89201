// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logentry

// Membership is the resolved condition on one multi-valued dimension.
type Membership struct {
	// Restricted is true when the caller asked for specific terms. Included
	// may still be empty if every requested term is also excluded, in which
	// case nothing matches.
	Restricted bool

	// Included is the requested terms minus the excluded ones.
	Included []int64
	Excluded []int64
}

// Criteria is an immutable snapshot of a [Filter], taken each time an
// executor builds a query.
type Criteria struct {
	StartDate  int64
	EndDate    int64
	DateColumn DateColumn

	Users    []int64
	Logbooks Membership
	Tags     Membership

	SortField     SortField
	SortDirection SortDirection

	// Limit of zero disables paging.
	Limit  int
	Offset int

	Search string
}

// Criteria snapshots the filter.
func (filter *Filter) Criteria() Criteria {
	paging := filter.Paging()

	criteria := Criteria{
		StartDate:     filter.StartDate(),
		EndDate:       filter.endDate,
		DateColumn:    filter.dateColumn,
		Users:         filter.users.list(),
		Logbooks:      membership(filter.logbooks, filter.excludedLogbooks),
		Tags:          membership(filter.tags, filter.excludedTags),
		SortField:     filter.sortField,
		SortDirection: filter.sortDirection,
		Search:        filter.searchString,
	}

	if paging.Enabled() {
		criteria.Limit = paging.Limit
		criteria.Offset = paging.Offset()
	}
	return criteria
}

func membership(included, excluded *termSet) Membership {
	return Membership{
		Restricted: included.len() > 0,
		Included:   included.without(excluded),
		Excluded:   excluded.list(),
	}
}
