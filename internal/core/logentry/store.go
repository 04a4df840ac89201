// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logentry

import "context"

type Repository interface {
	// LoadMany returns the entries in the order of ids, skipping ids that
	// no longer exist.
	LoadMany(context context.Context, ids []int64) ([]*LogEntry, error)

	// SearchReferences matches published entries by title, and by lognumber
	// when withLognumber is set.
	SearchReferences(context context.Context, fragment string, withLognumber bool, limit int) ([]Reference, error)
}
