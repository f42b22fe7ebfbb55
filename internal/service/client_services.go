// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/shiosayi/internal/adapter"
	"github.com/MKhiriev/shiosayi/internal/config"
	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/internal/store"
	"github.com/MKhiriev/shiosayi/internal/utils"
)

type ClientServices struct {
	SyncService     ClientSyncService
	CatalogService  ClientCatalogService
	AuthService     ClientAuthService
	SettingsService ClientSettingsService
}

func NewClientServices(
	storages *store.ClientStorages,
	remote adapter.RemoteAdapter,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) (*ClientServices, error) {
	digester, err := utils.NewDigester(cfg.Remote.DigestAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("error creating digester: %w", err)
	}

	return &ClientServices{
		SyncService:     NewClientSyncService(storages, remote, digester, logger),
		CatalogService:  NewClientCatalogService(storages.Catalog, cfg.Catalog, logger),
		AuthService:     NewClientAuthService(storages.Settings, remote, logger),
		SettingsService: NewClientSettingsService(storages.Settings),
	}, nil
}
