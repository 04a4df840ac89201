// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "context"

type Repository interface {
	FindByID(context context.Context, id int64) (*Author, error)
	FindByName(context context.Context, name string) (*Author, error)
	FindMany(context context.Context, ids []int64) (map[int64]*Author, error)

	// Matching returns accounts whose name, first or last name contains
	// fragment, case-insensitively, ordered by account name.
	Matching(context context.Context, fragment string, limit int) ([]*Author, error)
}
