package service

import (
	"fmt"

	"github.com/MKhiriev/fit-sync/internal/config"
	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/internal/store"
	"github.com/MKhiriev/fit-sync/models"
)

type Services struct {
	BinService     BinService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	bins := NewBinValidationService(cfg.App.MaxBinSize).Wrap(NewBinService(storages.BinStorage, logger))

	return &Services{
		BinService:     bins,
		AppInfoService: appInfo,
	}, nil
}
