// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package term

import "context"

// Repository reads terms. Both finders return dberr.ErrNotFound on a miss.
type Repository interface {
	FindByID(context context.Context, vocabulary Vocabulary, id int64) (*Term, error)
	FindByName(context context.Context, vocabulary Vocabulary, name string) (*Term, error)
}
