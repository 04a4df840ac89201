// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package term resolves logbook and tag names to taxonomy terms.
package term

import (
	"fmt"
	"strconv"
	"strings"
)

// Vocabulary names a category space. Term names are unique within one.
type Vocabulary string

const (
	Logbooks Vocabulary = "logbooks"
	Tags     Vocabulary = "tags"
)

// Label is the singular, capitalised noun used in client messages.
func (v Vocabulary) Label() string {
	switch v {
	case Logbooks:
		return "Logbook"
	case Tags:
		return "Tag"
	default:
		return "Term"
	}
}

// Term is a logbook or tag.
type Term struct {
	ID         int64      `json:"id"`
	Vocabulary Vocabulary `json:"vocabulary"`
	Name       string     `json:"name"`
}

// # References

// RefKind discriminates the three ways a caller can name a term.
type RefKind int

const (
	RefByName RefKind = iota
	RefByID
	RefResolved
)

// Ref names a term by name, by id, or carries an already loaded term.
type Ref struct {
	kind RefKind
	name string
	id   int64
	term Term
}

// ByName refers to a term by its exact, case-sensitive name.
func ByName(name string) Ref { return Ref{kind: RefByName, name: name} }

// ByID refers to a term by identifier.
func ByID(id int64) Ref { return Ref{kind: RefByID, id: id} }

// Resolved wraps a term that needs no lookup.
func Resolved(term Term) Ref { return Ref{kind: RefResolved, term: term} }

// ParseRef treats numeric input as an id and anything else as a name.
func ParseRef(raw string) Ref {
	raw = strings.TrimSpace(raw)
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ByID(id)
	}
	return ByName(raw)
}

func (ref Ref) Kind() RefKind { return ref.kind }

func (ref Ref) String() string {
	switch ref.kind {
	case RefByID:
		return fmt.Sprintf("#%d", ref.id)
	case RefResolved:
		return ref.term.Name
	default:
		return ref.name
	}
}
