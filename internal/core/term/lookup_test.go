// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package term_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elog/internal/core/term"
	"github.com/taibuivan/elog/internal/platform/apperr"
	"github.com/taibuivan/elog/internal/platform/storage/storagetest"
)

/*
TestLookup_Resolve covers name and id keys in both vocabularies.
*/
func TestLookup_Resolve(t *testing.T) {
	store := storagetest.Open(t)
	fixture := storagetest.Seed(t, store.DB)
	lookup := term.NewLookup(term.NewSQLRepository(store.DB))
	ctx := context.Background()

	tests := []struct {
		name       string
		key        string
		vocabulary term.Vocabulary
		wantID     int64
		wantErr    string
	}{
		{"logbook_by_name", "Book2", term.Logbooks, fixture.Logbooks["Book2"], ""},
		{"logbook_by_id", strconv.FormatInt(fixture.Logbooks["Book3"], 10), term.Logbooks, fixture.Logbooks["Book3"], ""},
		{"tag_by_name", "Tag1", term.Tags, fixture.Tags["Tag1"], ""},
		{"case_sensitive", "book1", term.Logbooks, 0, "Logbook term not found"},
		{"wrong_vocabulary", "Tag1", term.Logbooks, 0, "Logbook term not found"},
		{"tag_id_in_logbooks", strconv.FormatInt(fixture.Tags["Tag2"], 10), term.Logbooks, 0, "Logbook term not found"},
		{"missing_tag", "Nope", term.Tags, 0, "Tag term not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lookup.Resolve(ctx, tt.key, tt.vocabulary)
			if tt.wantErr != "" {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "NOT_FOUND", ae.Code)
				assert.Equal(t, tt.wantErr, ae.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, tt.vocabulary, got.Vocabulary)
		})
	}
}

/*
TestLookup_ResolveRef checks every arm of the reference union.
*/
func TestLookup_ResolveRef(t *testing.T) {
	store := storagetest.Open(t)
	fixture := storagetest.Seed(t, store.DB)
	lookup := term.NewLookup(term.NewSQLRepository(store.DB))
	ctx := context.Background()

	byName, err := lookup.ResolveRef(ctx, term.ByName("Book1"), term.Logbooks)
	require.NoError(t, err)
	assert.Equal(t, fixture.Logbooks["Book1"], byName.ID)

	byID, err := lookup.ResolveRef(ctx, term.ByID(fixture.Tags["Tag3"]), term.Tags)
	require.NoError(t, err)
	assert.Equal(t, "Tag3", byID.Name)

	resolved := term.Term{ID: 99, Vocabulary: term.Logbooks, Name: "Preloaded"}
	got, err := lookup.ResolveRef(ctx, term.Resolved(resolved), term.Logbooks)
	require.NoError(t, err)
	assert.Equal(t, resolved, got)

	_, err = lookup.ResolveRef(ctx, term.Resolved(resolved), term.Tags)
	assert.Error(t, err)

	_, err = lookup.ResolveRef(ctx, term.ByName(""), term.Tags)
	assert.Error(t, err)
}

/*
TestParseRef confirms numeric strings become id references.
*/
func TestParseRef(t *testing.T) {
	assert.Equal(t, term.RefByID, term.ParseRef("42").Kind())
	assert.Equal(t, "#42", term.ParseRef(" 42 ").String())
	assert.Equal(t, term.RefByName, term.ParseRef("Book1").Kind())
	assert.Equal(t, "Book1", term.ParseRef("Book1").String())
}
