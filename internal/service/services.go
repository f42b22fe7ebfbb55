package service

import (
	"fmt"

	"github.com/MKhiriev/shiosayi/internal/config"
	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/internal/store"
	"github.com/MKhiriev/shiosayi/internal/utils"
)

type Services struct {
	AppInfoService  AppInfoService
	SnapshotService SnapshotService
}

func NewServices(storages *store.Storages, cfg *config.PublisherConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	digester, err := utils.NewDigester(cfg.DigestAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("error creating digester: %w", err)
	}

	return &Services{
		AppInfoService:  appInfoService,
		SnapshotService: NewSnapshotService(storages.Snapshot, digester, logger),
	}, nil
}
