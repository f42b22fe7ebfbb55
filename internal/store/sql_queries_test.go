// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/shiosayi/models"
)

func whereClause(t *testing.T, query string) string {
	t.Helper()
	idx := strings.Index(query, "WHERE")
	if idx == -1 {
		return ""
	}
	where := query[idx:]
	for _, stop := range []string{" ORDER BY", " GROUP BY", " LIMIT"} {
		if i := strings.Index(where, stop); i != -1 {
			where = where[:i]
		}
	}
	return where
}

func Test_escapeLike(t *testing.T) {
	assert.Equal(t, "Love", escapeLike("Love"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\tmp`, escapeLike(`c:\tmp`))
}

func Test_buildListFilmsQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.FilmFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "no criteria: no WHERE clause",
			filter: models.FilmFilter{Page: 1, Limit: 20},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.NotContains(t, query, "WHERE")
				assert.Contains(t, query, "FROM films LEFT JOIN guardians ON films.guardian_id = guardians.id")
				assert.Contains(t, query, "guardians.name AS guardian_name")
				assert.Contains(t, query, "ORDER BY films.title ASC, films.id ASC")
				assert.Contains(t, query, "LIMIT 20 OFFSET 0")
				assert.Empty(t, args)
			},
		},
		{
			name:   "search only",
			filter: models.FilmFilter{Page: 1, Limit: 20, SearchTerm: "Reel"},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, `films.title LIKE ? ESCAPE '\'`)
				require.Len(t, args, 1)
				assert.Equal(t, "%Reel%", args[0])
			},
		},
		{
			name:   "search wildcards are escaped",
			filter: models.FilmFilter{Page: 1, Limit: 20, SearchTerm: "50%_off"},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Len(t, args, 1)
				assert.Equal(t, `%50\%\_off%`, args[0])
			},
		},
		{
			name:   "multiple statuses render one IN clause",
			filter: models.FilmFilter{Page: 1, Limit: 20, Statuses: []models.FilmStatus{models.StatusOrphan, models.StatusAbandoned}},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "films.status IN (?,?)")
				assert.Equal(t, []any{"orphan", "abandoned"}, args)
			},
		},
		{
			name: "all criteria are joined with AND in a fixed order",
			filter: models.FilmFilter{
				Page: 3, Limit: 10,
				SearchTerm: "Love",
				Statuses:   []models.FilmStatus{models.StatusAdopted},
				Region:     "Kansai",
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				where := whereClause(t, query)
				assert.Equal(t, `WHERE (films.title LIKE ? ESCAPE '\' AND films.status IN (?) AND films.region = ?)`, where)
				assert.Equal(t, []any{"%Love%", "adopted", "Kansai"}, args)
				assert.Contains(t, query, "LIMIT 10 OFFSET 20")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListFilmsQuery(tt.filter)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

// Test_buildCountFilmsQuery_SamePredicate checks that the count query filters
// by exactly the clauses and arguments of the page query.
func Test_buildCountFilmsQuery_SamePredicate(t *testing.T) {
	filters := []models.FilmFilter{
		{Page: 1, Limit: 20},
		{Page: 2, Limit: 5, SearchTerm: "a"},
		{Page: 1, Limit: 20, Statuses: []models.FilmStatus{models.StatusOrphan}},
		{Page: 4, Limit: 7, SearchTerm: "x", Statuses: models.AllStatuses, Region: "Kanto"},
	}

	for _, f := range filters {
		listQuery, listArgs, err := buildListFilmsQuery(f)
		require.NoError(t, err)
		countQuery, countArgs, err := buildCountFilmsQuery(f)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(countQuery, "SELECT COUNT(*) FROM films"), countQuery)
		assert.NotContains(t, countQuery, "LIMIT")
		assert.NotContains(t, countQuery, "ORDER BY")
		assert.Equal(t, whereClause(t, listQuery), whereClause(t, countQuery))
		assert.Empty(t, cmp.Diff(listArgs, countArgs, cmpopts.EquateEmpty()))
	}
}

func Test_filmPredicate_EmptyStatusesEqualsOmitted(t *testing.T) {
	withEmpty := filmPredicate(models.FilmFilter{Statuses: []models.FilmStatus{}, Region: "Kanto"})
	omitted := filmPredicate(models.FilmFilter{Region: "Kanto"})

	assert.Equal(t, omitted, withEmpty)
	assert.Len(t, omitted, 1)
}

func Test_buildRegionsQuery(t *testing.T) {
	query, args, err := buildRegionsQuery()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT films.region, COUNT(*) AS film_count FROM films WHERE films.region IS NOT NULL AND films.region != '' GROUP BY films.region ORDER BY films.region ASC",
		query)
	assert.Empty(t, args)
}

func Test_buildGuardianQueries(t *testing.T) {
	query, args, err := buildByGuardianQuery("g-1")
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE films.guardian_id = ?")
	assert.Contains(t, query, "ORDER BY films.title ASC, films.id ASC")
	assert.Equal(t, []any{"g-1"}, args)

	query, args, err = buildCountByGuardianQuery("g-1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM films WHERE films.guardian_id = ?", query)
	assert.Equal(t, []any{"g-1"}, args)
}
