// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package author looks up the user accounts that write log entries.
package author

import (
	"fmt"
	"strconv"
	"strings"
)

// Author is a user account, read-only from the logbook service's side.
type Author struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Mail      string `json:"mail"`
}

// Ref names an author by account name, by id, or carries a loaded author.
type Ref struct {
	kind   refKind
	name   string
	id     int64
	author Author
}

type refKind int

const (
	refByName refKind = iota
	refByID
	refResolved
)

func ByName(name string) Ref { return Ref{kind: refByName, name: name} }
func ByID(id int64) Ref { return Ref{kind: refByID, id: id} }
func Resolved(author Author) Ref { return Ref{kind: refResolved, author: author} }

// ParseRef treats numeric input as an id and anything else as an account name.
func ParseRef(raw string) Ref {
	raw = strings.TrimSpace(raw)
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ByID(id)
	}
	return ByName(raw)
}

func (ref Ref) String() string {
	switch ref.kind {
	case refByID:
		return fmt.Sprintf("#%d", ref.id)
	case refResolved:
		return ref.author.Name
	default:
		return ref.name
	}
}
