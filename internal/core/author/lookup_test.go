// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elog/internal/core/author"
	"github.com/taibuivan/elog/internal/platform/apperr"
	"github.com/taibuivan/elog/internal/platform/storage/storagetest"
)

/*
TestLookup_ResolveRef resolves by name, by id and reports unknown users.
*/
func TestLookup_ResolveRef(t *testing.T) {
	store := storagetest.Open(t)
	fixture := storagetest.Seed(t, store.DB)
	lookup := author.NewLookup(author.NewSQLRepository(store.DB))
	ctx := context.Background()

	byName, err := lookup.ResolveRef(ctx, author.ByName("User2"))
	require.NoError(t, err)
	assert.Equal(t, fixture.Users["User2"], byName.ID)
	assert.Equal(t, "Grace", byName.FirstName)

	byID, err := lookup.ResolveRef(ctx, author.ParseRef(strconv.FormatInt(fixture.Users["User1"], 10)))
	require.NoError(t, err)
	assert.Equal(t, "User1", byID.Name)

	_, err = lookup.ResolveRef(ctx, author.ByName("Nobody"))
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "User not found", ae.Message)
}

/*
TestSQLRepository_Matching checks the case-insensitive contains search.
*/
func TestSQLRepository_Matching(t *testing.T) {
	store := storagetest.Open(t)
	storagetest.Seed(t, store.DB)
	repo := author.NewSQLRepository(store.DB)
	ctx := context.Background()

	tests := []struct {
		name     string
		fragment string
		want     []string
	}{
		{"account_name", "user", []string{"User1", "User2", "User3"}},
		{"first_name", "GRA", []string{"User2"}},
		{"last_name", "tur", []string{"User3"}},
		{"no_match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Matching(ctx, tt.fragment, 10)
			require.NoError(t, err)

			var names []string
			for _, a := range got {
				names = append(names, a.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

/*
TestSQLRepository_FindMany loads a set of authors keyed by id.
*/
func TestSQLRepository_FindMany(t *testing.T) {
	store := storagetest.Open(t)
	fixture := storagetest.Seed(t, store.DB)
	repo := author.NewSQLRepository(store.DB)

	got, err := repo.FindMany(context.Background(), []int64{fixture.Users["User1"], fixture.Users["User3"], 404})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "User3", got[fixture.Users["User3"]].Name)

	empty, err := repo.FindMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
