// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/shiosayi/internal/config"
	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/internal/store"
	"github.com/MKhiriev/shiosayi/models"
)

type clientCatalogService struct {
	repo store.CatalogRepository

	pageSize    int
	maxPageSize int

	logger *logger.Logger
}

// NewClientCatalogService constructs a [ClientCatalogService] with the page
// sizes from cfg.
func NewClientCatalogService(repo store.CatalogRepository, cfg config.ClientCatalog, logger *logger.Logger) ClientCatalogService {
	return &clientCatalogService{
		repo:        repo,
		pageSize:    cfg.PageSize,
		maxPageSize: cfg.MaxPageSize,
		logger:      logger,
	}
}

// DefaultFilter implements [ClientCatalogService]: the first page of
// orphaned films.
func (c *clientCatalogService) DefaultFilter() models.FilmFilter {
	f := models.DefaultFilmFilter()
	f.Limit = 0
	return f.NormalizeWith(c.pageSize, c.maxPageSize)
}

func (c *clientCatalogService) List(ctx context.Context, filter models.FilmFilter) (models.FilmPage, error) {
	filter = filter.NormalizeWith(c.pageSize, c.maxPageSize)

	page, err := c.repo.List(ctx, filter)
	if err != nil {
		return models.FilmPage{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "clientCatalogService.List").
		Int("page", filter.Page).
		Int("limit", filter.Limit).
		Int("films", len(page.Films)).
		Int("total_films", page.TotalFilms).
		Msg("catalog page loaded")

	return page, nil
}

func (c *clientCatalogService) Regions(ctx context.Context) ([]models.RegionCount, error) {
	return c.repo.RegionsWithCounts(ctx)
}

func (c *clientCatalogService) GuardianFilms(ctx context.Context, guardianID string) []models.Film {
	if guardianID == "" {
		return []models.Film{}
	}
	return c.repo.ByGuardian(ctx, guardianID)
}

func (c *clientCatalogService) GuardianFilmCount(ctx context.Context, guardianID string) int {
	if guardianID == "" {
		return 0
	}
	return c.repo.CountByGuardian(ctx, guardianID)
}
