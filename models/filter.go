// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	// DefaultPageSize is used when a filter carries a non-positive limit.
	DefaultPageSize = 20

	// MaxPageSize is the largest page size the client configuration accepts.
	MaxPageSize = 100
)

// FilmFilter describes a single catalog read request.
//
// Every optional field narrows the result; the fields combine with AND.
// An empty Statuses slice means "any status", never "no status".
type FilmFilter struct {
	// Page is the 1-based page number.
	Page int `json:"page"`

	// Limit is the page size.
	Limit int `json:"limit"`

	// SearchTerm is matched as a case-insensitive substring of the title.
	SearchTerm string `json:"search_term,omitempty"`

	// Statuses restricts the result to films in one of the given states.
	Statuses []FilmStatus `json:"statuses,omitempty"`

	// Region restricts the result to an exact region.
	Region string `json:"region,omitempty"`
}

// Normalize repairs invalid pagination: a page below 1 becomes 1 and a
// non-positive limit becomes DefaultPageSize. A valid limit is kept as is,
// however large. Duplicate statuses are dropped, keeping first occurrence
// order.
func (f FilmFilter) Normalize() FilmFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	return f.dedupStatuses()
}

// NormalizeWith is Normalize with caller-provided page size bounds: limits
// above maxLimit are lowered to it. maxLimit above MaxPageSize is treated as
// MaxPageSize.
func (f FilmFilter) NormalizeWith(defaultLimit, maxLimit int) FilmFilter {
	if maxLimit <= 0 || maxLimit > MaxPageSize {
		maxLimit = MaxPageSize
	}
	if defaultLimit <= 0 || defaultLimit > maxLimit {
		defaultLimit = min(DefaultPageSize, maxLimit)
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	return f.Normalize()
}

func (f FilmFilter) dedupStatuses() FilmFilter {
	if len(f.Statuses) > 0 {
		seen := make(map[FilmStatus]struct{}, len(f.Statuses))
		statuses := make([]FilmStatus, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			statuses = append(statuses, s)
		}
		f.Statuses = statuses
	}

	return f
}

// Offset returns the number of rows to skip for the filter's page.
// Call it on a normalized filter.
func (f FilmFilter) Offset() int {
	if f.Page < 1 || f.Limit <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// HasStatus reports whether status is part of the filter's status set.
func (f FilmFilter) HasStatus(status FilmStatus) bool {
	for _, s := range f.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsShowAll reports whether no narrowing criterion is active.
func (f FilmFilter) IsShowAll() bool {
	return f.SearchTerm == "" && f.Region == "" && len(f.Statuses) == 0
}

// DefaultFilmFilter is the preset applied when the catalog is first opened
// or reset: the first page of orphaned films.
func DefaultFilmFilter() FilmFilter {
	return FilmFilter{
		Page:     1,
		Limit:    DefaultPageSize,
		Statuses: []FilmStatus{StatusOrphan},
	}
}
