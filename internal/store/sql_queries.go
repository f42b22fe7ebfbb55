// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shiosayi/models"
)

// filmColumns is the projection of a film row joined with its guardian.
var filmColumns = []string{
	"films.id",
	"films.title",
	"films.year",
	"films.plot",
	"films.poster_url",
	"films.region",
	"films.guardian_id",
	"films.status",
	"films.updated_at",
	"guardians.name AS guardian_name",
}

const (
	filmsTable        = "films"
	joinGuardians     = "guardians ON films.guardian_id = guardians.id"
	titleOrder        = "films.title ASC"
	idOrder           = "films.id ASC"
	searchClause      = `films.title LIKE ? ESCAPE '\'`
	regionNotEmpty    = "films.region IS NOT NULL AND films.region != ''"
	countColumn       = "COUNT(*)"
	regionCountColumn = "COUNT(*) AS film_count"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes the LIKE wildcards of term so it matches literally.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// filmPredicate turns a filter into an ordered conjunction of clauses. The
// same predicate is used for the page query and the count query so the two
// always describe the same set.
func filmPredicate(filter models.FilmFilter) sq.And {
	pred := sq.And{}

	if filter.SearchTerm != "" {
		pred = append(pred, sq.Expr(searchClause, "%"+escapeLike(filter.SearchTerm)+"%"))
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		pred = append(pred, sq.Eq{"films.status": statuses})
	}

	if filter.Region != "" {
		pred = append(pred, sq.Eq{"films.region": filter.Region})
	}

	return pred
}

func withPredicate(b sq.SelectBuilder, pred sq.And) sq.SelectBuilder {
	if len(pred) == 0 {
		return b
	}
	return b.Where(pred)
}

// buildListFilmsQuery builds the page query for a normalized filter.
func buildListFilmsQuery(filter models.FilmFilter) (string, []any, error) {
	return withPredicate(
		sq.Select(filmColumns...).From(filmsTable).LeftJoin(joinGuardians),
		filmPredicate(filter),
	).
		OrderBy(titleOrder, idOrder).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		PlaceholderFormat(sq.Question).
		ToSql()
}

// buildCountFilmsQuery counts every row matching the filter, ignoring
// pagination.
func buildCountFilmsQuery(filter models.FilmFilter) (string, []any, error) {
	return withPredicate(
		sq.Select(countColumn).From(filmsTable),
		filmPredicate(filter),
	).
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildRegionsQuery() (string, []any, error) {
	return sq.Select("films.region", regionCountColumn).
		From(filmsTable).
		Where(regionNotEmpty).
		GroupBy("films.region").
		OrderBy("films.region ASC").
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildByGuardianQuery(guardianID string) (string, []any, error) {
	return sq.Select(filmColumns...).
		From(filmsTable).
		LeftJoin(joinGuardians).
		Where(sq.Eq{"films.guardian_id": guardianID}).
		OrderBy(titleOrder, idOrder).
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildCountByGuardianQuery(guardianID string) (string, []any, error) {
	return sq.Select(countColumn).
		From(filmsTable).
		Where(sq.Eq{"films.guardian_id": guardianID}).
		PlaceholderFormat(sq.Question).
		ToSql()
}
