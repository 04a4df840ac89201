// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package autocomplete suggests authors and entry references while an entry
// form is being filled in.
package autocomplete

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/elog/internal/core/author"
	"github.com/taibuivan/elog/internal/core/logentry"
	"github.com/taibuivan/elog/internal/platform/constants"
	"github.com/taibuivan/elog/pkg/slice"
)

// Suggestion is one completion. Key replaces the field value when chosen;
// Label is what the user sees.
type Suggestion struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// AuthorSearcher finds authors by a name fragment.
type AuthorSearcher interface {
	Matching(context context.Context, fragment string, limit int) ([]*author.Author, error)
}

// ReferenceSearcher finds entries by title or lognumber fragment.
type ReferenceSearcher interface {
	SearchReferences(context context.Context, fragment string, withLognumber bool, limit int) ([]logentry.Reference, error)
}

type Service struct {
	authors    AuthorSearcher
	references ReferenceSearcher
	minLength  int
	limit      int
}

func NewService(authors AuthorSearcher, references ReferenceSearcher) *Service {
	return &Service{
		authors:    authors,
		references: references,
		minLength:  constants.AutocompleteMinLength,
		limit:      constants.AutocompleteLimit,
	}
}

// # Authors

/*
EntryMakers completes the last account name of a comma separated list.

The key keeps the earlier names and appends the matched account name, so
"User2, love" suggests "User2,User1, " when User1 is Ada Lovelace.
*/
func (service *Service) EntryMakers(context context.Context, input string) ([]Suggestion, error) {
	return service.completeAuthors(context, input, func(a *author.Author) string { return a.Name })
}

// Emails completes the last mail address of a comma separated list.
func (service *Service) Emails(context context.Context, input string) ([]Suggestion, error) {
	return service.completeAuthors(context, input, func(a *author.Author) string { return a.Mail })
}

func (service *Service) completeAuthors(context context.Context, input string, field func(*author.Author) string) ([]Suggestion, error) {
	suggestions := make([]Suggestion, 0)
	if service.tooShort(input) {
		return suggestions, nil
	}

	pieces := splitList(input)
	if len(pieces) == 0 {
		return suggestions, nil
	}
	last := pieces[len(pieces)-1]
	earlier := strings.Join(pieces[:len(pieces)-1], ", ")
	if service.tooShort(last) {
		return suggestions, nil
	}

	authors, err := service.authors.Matching(context, last, service.limit)
	if err != nil {
		return nil, err
	}

	for _, a := range authors {
		value := field(a)
		key := value + ", "
		if earlier != "" {
			key = earlier + "," + key
		}
		suggestions = append(suggestions, Suggestion{
			Key:   key,
			Label: fmt.Sprintf("%s (%s %s)", value, a.FirstName, a.LastName),
		})
	}
	return suggestions, nil
}

// splitList splits on commas, trimming pieces and dropping empty ones.
func splitList(input string) []string {
	pieces := slice.Map(strings.Split(input, ","), strings.TrimSpace)
	return slice.Filter(pieces, func(piece string) bool { return piece != "" })
}

// # References

// References completes a logentry reference. Numeric input also matches
// lognumbers.
func (service *Service) References(context context.Context, input string) ([]Suggestion, error) {
	suggestions := make([]Suggestion, 0)
	input = strings.TrimSpace(input)
	if service.tooShort(input) {
		return suggestions, nil
	}

	_, err := strconv.ParseInt(input, 10, 64)
	numeric := err == nil

	references, err := service.references.SearchReferences(context, input, numeric, service.limit)
	if err != nil {
		return nil, err
	}

	for _, reference := range references {
		lognumber := strconv.FormatInt(reference.Lognumber, 10)
		suggestions = append(suggestions, Suggestion{
			Key:   lognumber,
			Label: lognumber + " - " + reference.Title,
		})
	}
	return suggestions, nil
}

func (service *Service) tooShort(text string) bool {
	return utf8.RuneCountInString(text) < service.minLength
}
