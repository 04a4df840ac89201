// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logentry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elog/internal/core/term"
	"github.com/taibuivan/elog/internal/platform/storage/storagetest"
)

/*
TestSQLRepository_LoadMany materialises entries in the requested order.
*/
func TestSQLRepository_LoadMany(t *testing.T) {
	h := newHarness(t)
	ids := h.fixture.Entries

	entries, err := h.entries.LoadMany(context.Background(), []int64{ids["Entry 2"], 9999, ids["Entry 1"]})
	require.NoError(t, err)
	require.Equal(t, []string{"Entry 2", "Entry 1"}, titles(entries))

	second, first := entries[0], entries[1]

	assert.Equal(t, h.fixture.Lognumbers["Entry 2"], second.Lognumber)
	assert.Equal(t, storagetest.Entry2Created.Unix(), second.Created)
	assert.Equal(t, storagetest.Entry2Created.Unix()+3600, second.Changed)
	require.NotNil(t, second.Author)
	assert.Equal(t, "User1", second.Author.Name)
	assert.Equal(t, []term.Term{
		{ID: h.fixture.Logbooks["Book1"], Vocabulary: term.Logbooks, Name: "Book1"},
		{ID: h.fixture.Logbooks["Book2"], Vocabulary: term.Logbooks, Name: "Book2"},
	}, second.Logbooks)
	assert.Len(t, second.Tags, 2)
	assert.Zero(t, second.AttachmentCount)
	assert.Zero(t, second.CommentCount)

	assert.Equal(t, "Entry 1", first.Title, "current revision wins over the superseded one")
	assert.Equal(t, 1, first.AttachmentCount)
	assert.Equal(t, 1, first.ImageCount)
	assert.Equal(t, 2, first.CommentCount)
}

/*
TestSQLRepository_LoadMany_Empty skips the queries for an empty id list.
*/
func TestSQLRepository_LoadMany_Empty(t *testing.T) {
	h := newHarness(t)

	entries, err := h.entries.LoadMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

/*
TestSQLRepository_LoadMany_MissingAuthor keeps entries whose account is gone.
*/
func TestSQLRepository_LoadMany_MissingAuthor(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	id := h.fixture.Entries["Entry 3"]

	_, err := h.store.DB.Exec(ctx, `UPDATE logentry_revision SET author_id = NULL WHERE entry_id = $1`, id)
	require.NoError(t, err)

	entries, err := h.entries.LoadMany(ctx, []int64{id})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Author)
}

/*
TestSQLRepository_SearchReferences matches titles and, optionally, lognumbers.
*/
func TestSQLRepository_SearchReferences(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		fragment      string
		withLognumber bool
		limit         int
		want          []int64
	}{
		{"title", "ENTRY", false, 10, []int64{3000003, 3000002, 3000001}},
		{"title_limit", "entry", false, 2, []int64{3000003, 3000002}},
		{"lognumber", "0002", true, 10, []int64{3000002}},
		{"lognumber_ignored", "0002", false, 10, []int64{}},
		{"unpublished_hidden", "draft", false, 10, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			references, err := h.entries.SearchReferences(ctx, tt.fragment, tt.withLognumber, tt.limit)
			require.NoError(t, err)

			lognumbers := make([]int64, 0, len(references))
			for _, reference := range references {
				lognumbers = append(lognumbers, reference.Lognumber)
			}
			assert.Equal(t, tt.want, lognumbers)
		})
	}
}
