// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FilmStatus describes the adoption state of a film in the catalog.
type FilmStatus string

const (
	// StatusOrphan marks a film that has no guardian yet.
	StatusOrphan FilmStatus = "orphan"

	// StatusAdopted marks a film that is looked after by a guardian.
	StatusAdopted FilmStatus = "adopted"

	// StatusAbandoned marks a film whose guardian gave it up.
	StatusAbandoned FilmStatus = "abandoned"
)

// AllStatuses lists every known status in display order.
var AllStatuses = []FilmStatus{StatusOrphan, StatusAdopted, StatusAbandoned}

// Valid reports whether s is one of the known statuses.
func (s FilmStatus) Valid() bool {
	switch s {
	case StatusOrphan, StatusAdopted, StatusAbandoned:
		return true
	default:
		return false
	}
}

// Film is one row of the replica's films table, left-joined with the
// guardians table for the display name.
//
// Nullable columns are represented by pointers. Films are read-only on the
// client and produced fresh for every query.
type Film struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Year         *int64     `json:"year,omitempty"`
	Plot         *string    `json:"plot,omitempty"`
	PosterURL    *string    `json:"poster_url,omitempty"`
	Region       *string    `json:"region,omitempty"`
	GuardianID   *string    `json:"guardian_id,omitempty"`
	Status       FilmStatus `json:"status"`
	UpdatedAt    *string    `json:"updated_at,omitempty"`
	GuardianName *string    `json:"guardian_name,omitempty"`
}

// FilmPage is one page of a filtered listing.
//
// TotalFilms is counted with the same predicate as Films but without
// pagination, so it is the size of the whole matching set. Limit is the page
// size the read was executed with.
type FilmPage struct {
	Films      []Film `json:"films"`
	TotalFilms int    `json:"total_films"`
	Limit      int    `json:"limit"`
}

// TotalPages returns the number of non-empty pages of size Limit.
func (p FilmPage) TotalPages() int {
	if p.Limit <= 0 || p.TotalFilms <= 0 {
		return 0
	}
	return (p.TotalFilms + p.Limit - 1) / p.Limit
}

// RegionCount is the number of films recorded for a single region.
type RegionCount struct {
	Region    string `json:"region"`
	FilmCount int    `json:"film_count"`
}
