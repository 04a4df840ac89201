// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"

	"github.com/taibuivan/elog/internal/platform/apperr"
	"github.com/taibuivan/elog/internal/platform/dberr"
)

// Lookup resolves author references for the entry filter.
type Lookup struct {
	repo Repository
}

func NewLookup(repo Repository) *Lookup {
	return &Lookup{repo: repo}
}

// ResolveRef returns the referenced author or apperr NOT_FOUND ("User not found").
func (lookup *Lookup) ResolveRef(context context.Context, ref Ref) (Author, error) {
	var (
		a   *Author
		err error
	)

	switch ref.kind {
	case refResolved:
		return ref.author, nil
	case refByID:
		a, err = lookup.repo.FindByID(context, ref.id)
	default:
		if ref.name == "" {
			return Author{}, apperr.NotFound("User")
		}
		a, err = lookup.repo.FindByName(context, ref.name)
	}

	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.Code == dberr.ErrNotFound.Code {
			return Author{}, apperr.NotFound("User")
		}
		return Author{}, err
	}
	return *a, nil
}
