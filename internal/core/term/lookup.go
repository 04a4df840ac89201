// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package term

import (
	"context"
	"strconv"

	"github.com/taibuivan/elog/internal/platform/apperr"
	"github.com/taibuivan/elog/internal/platform/dberr"
)

// Lookup resolves keys and references within a vocabulary.
type Lookup struct {
	repo Repository
}

func NewLookup(repo Repository) *Lookup {
	return &Lookup{repo: repo}
}

/*
Resolve finds the term named by key in vocabulary.

A numeric key is an id, anything else an exact name.

Returns:
  - *Term: the single match
  - error: apperr NOT_FOUND ("Logbook term not found") on a miss
*/
func (lookup *Lookup) Resolve(context context.Context, key string, vocabulary Vocabulary) (*Term, error) {
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		return lookup.byID(context, vocabulary, id)
	}
	return lookup.byName(context, vocabulary, key)
}

// ResolveRef resolves ref in vocabulary. A resolved term from another
// vocabulary is treated as a miss.
func (lookup *Lookup) ResolveRef(context context.Context, ref Ref, vocabulary Vocabulary) (Term, error) {
	var (
		t   *Term
		err error
	)

	switch ref.kind {
	case RefResolved:
		if ref.term.Vocabulary != vocabulary {
			return Term{}, notFound(vocabulary)
		}
		return ref.term, nil
	case RefByID:
		t, err = lookup.byID(context, vocabulary, ref.id)
	default:
		t, err = lookup.byName(context, vocabulary, ref.name)
	}

	if err != nil {
		return Term{}, err
	}
	return *t, nil
}

func (lookup *Lookup) byID(context context.Context, vocabulary Vocabulary, id int64) (*Term, error) {
	t, err := lookup.repo.FindByID(context, vocabulary, id)
	return t, translate(err, vocabulary)
}

func (lookup *Lookup) byName(context context.Context, vocabulary Vocabulary, name string) (*Term, error) {
	if name == "" {
		return nil, notFound(vocabulary)
	}
	t, err := lookup.repo.FindByName(context, vocabulary, name)
	return t, translate(err, vocabulary)
}

func translate(err error, vocabulary Vocabulary) error {
	if err == nil {
		return nil
	}
	if ae := apperr.As(err); ae != nil && ae.Code == dberr.ErrNotFound.Code {
		return notFound(vocabulary)
	}
	return err
}

func notFound(vocabulary Vocabulary) error {
	return apperr.NotFound(vocabulary.Label() + " term")
}
