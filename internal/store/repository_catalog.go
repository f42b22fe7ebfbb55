// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/models"
)

// catalogRepository reads films from the replica. It never writes and never
// holds a handle between calls: each method acquires the current one from
// the connection manager.
type catalogRepository struct {
	connections ConnectionManager
	logger      *logger.Logger
}

// NewCatalogRepository constructs a [CatalogRepository] over connections.
func NewCatalogRepository(connections ConnectionManager, log *logger.Logger) CatalogRepository {
	return &catalogRepository{
		connections: connections,
		logger:      log,
	}
}

// List returns one page of films matching filter and the size of the whole
// matching set. The filter is normalized first, so invalid pagination is
// repaired rather than rejected; the page reports the limit it was read with.
func (c *catalogRepository) List(ctx context.Context, filter models.FilmFilter) (models.FilmPage, error) {
	log := logger.FromContext(ctx)
	filter = filter.Normalize()

	listQuery, listArgs, err := buildListFilmsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.List").Msg("failed to build list query")
		return models.FilmPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	countQuery, countArgs, err := buildCountFilmsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.List").Msg("failed to build count query")
		return models.FilmPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	db, err := c.connections.Acquire(ctx)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.List").Msg("failed to acquire replica connection")
		return models.FilmPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	films, err := c.queryFilms(ctx, db, listQuery, listArgs)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.List").
			Int("page", filter.Page).
			Int("limit", filter.Limit).
			Msg("failed to list films")
		return models.FilmPage{}, err
	}

	var total int
	if err = db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "catalogRepository.List").Msg("failed to count films")
		return models.FilmPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.FilmPage{
		Films:      films,
		TotalFilms: total,
		Limit:      filter.Limit,
	}, nil
}

// RegionsWithCounts lists every non-empty region with its film count,
// ordered by region.
func (c *catalogRepository) RegionsWithCounts(ctx context.Context) ([]models.RegionCount, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRegionsQuery()
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.RegionsWithCounts").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	db, err := c.connections.Acquire(ctx)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.RegionsWithCounts").Msg("failed to acquire replica connection")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.RegionsWithCounts").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	regions := make([]models.RegionCount, 0)
	for rows.Next() {
		var rc models.RegionCount
		if err = rows.Scan(&rc.Region, &rc.FilmCount); err != nil {
			log.Err(err).Str("func", "catalogRepository.RegionsWithCounts").Msg("failed to scan region row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		regions = append(regions, rc)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "catalogRepository.RegionsWithCounts").Msg("error iterating region rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return regions, nil
}

// ByGuardian returns the films looked after by guardianID. Failures are
// logged and reported as an empty list.
func (c *catalogRepository) ByGuardian(ctx context.Context, guardianID string) []models.Film {
	log := logger.FromContext(ctx)

	query, args, err := buildByGuardianQuery(guardianID)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.ByGuardian").Str("guardian_id", guardianID).Msg("failed to build query")
		return []models.Film{}
	}

	db, err := c.connections.Acquire(ctx)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.ByGuardian").Str("guardian_id", guardianID).Msg("failed to acquire replica connection")
		return []models.Film{}
	}

	films, err := c.queryFilms(ctx, db, query, args)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.ByGuardian").Str("guardian_id", guardianID).Msg("failed to get guardian films")
		return []models.Film{}
	}

	return films
}

// CountByGuardian returns how many films guardianID looks after. Failures
// are logged and reported as zero.
func (c *catalogRepository) CountByGuardian(ctx context.Context, guardianID string) int {
	log := logger.FromContext(ctx)

	query, args, err := buildCountByGuardianQuery(guardianID)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.CountByGuardian").Str("guardian_id", guardianID).Msg("failed to build query")
		return 0
	}

	db, err := c.connections.Acquire(ctx)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.CountByGuardian").Str("guardian_id", guardianID).Msg("failed to acquire replica connection")
		return 0
	}

	var count int
	if err = db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "catalogRepository.CountByGuardian").Str("guardian_id", guardianID).Msg("failed to count guardian films")
		return 0
	}

	return count
}

func (c *catalogRepository) queryFilms(ctx context.Context, db *DB, query string, args []any) ([]models.Film, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	films := make([]models.Film, 0)
	for rows.Next() {
		film, err := scanFilm(rows)
		if err != nil {
			return nil, err
		}
		films = append(films, film)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return films, nil
}

func scanFilm(rows *sql.Rows) (models.Film, error) {
	var (
		film   models.Film
		status string
	)

	err := rows.Scan(
		&film.ID,
		&film.Title,
		&film.Year,
		&film.Plot,
		&film.PosterURL,
		&film.Region,
		&film.GuardianID,
		&status,
		&film.UpdatedAt,
		&film.GuardianName,
	)
	if err != nil {
		return models.Film{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	film.Status = models.FilmStatus(status)

	return film, nil
}
